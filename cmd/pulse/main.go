// Pulse is a timed reflex game: click the targets on the rotating ring in
// ascending order as fast as you can.
//
// Settings come from .env, then the environment, then flags.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/pulse"
	"github.com/phanxgames/pulse/audio"
)

func main() {
	cfg, err := pulse.LoadConfig(".env")
	if err != nil {
		log.Fatal(err)
	}

	flag.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	flag.IntVar(&cfg.NodeCount, "nodes", cfg.NodeCount, "number of targets")
	flag.Float64Var(&cfg.RotationSpeed, "speed", cfg.RotationSpeed, "ring rotation in degrees per second")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "layout seed (0 = random)")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log debug lines and frame stats to stderr")
	flag.BoolVar(&cfg.ShowFPS, "fps", cfg.ShowFPS, "show the FPS overlay")
	flag.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound")
	flag.StringVar(&cfg.ScreenshotDir, "screenshots", cfg.ScreenshotDir, "directory for F12 and scripted screenshots")
	flag.StringVar(&cfg.Script, "script", cfg.Script, "JSON input script to play back")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	game, err := pulse.NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if !cfg.Mute {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			game.Logger().Warnf("audio disabled: %v", err)
		} else {
			defer sm.Close()
			game.Router().SetCues(sm)
		}
	}

	if cfg.Script != "" {
		runner, err := pulse.LoadTestScriptFile(cfg.Script)
		if err != nil {
			log.Fatal(err)
		}
		game.SetTestRunner(runner)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
