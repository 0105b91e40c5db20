package pulse

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds window, gameplay and diagnostics settings.
type Config struct {
	Title  string
	Width  int // initial window width in pixels
	Height int // initial window height in pixels

	NodeCount     int
	RotationSpeed float64 // degrees per second
	Seed          uint64  // 0 picks a random seed

	Debug         bool   // "[pulse]" debug lines and frame stats on stderr
	ShowFPS       bool   // FPS/TPS overlay
	Mute          bool   // disable audio cues
	ScreenshotDir string // enables F12 screenshots when non-empty
	Script        string // path to a JSON input script
}

// DefaultConfig returns the settings the game uses when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		Title:         "Pulse",
		Width:         800,
		Height:        600,
		NodeCount:     DefaultNodeCount,
		RotationSpeed: DefaultRotationSpeed,
	}
}

// Environment keys read by LoadConfig.
const (
	EnvWidth         = "PULSE_WIDTH"
	EnvHeight        = "PULSE_HEIGHT"
	EnvNodeCount     = "PULSE_NODE_COUNT"
	EnvRotationSpeed = "PULSE_ROTATION_SPEED"
	EnvSeed          = "PULSE_SEED"
	EnvDebug         = "PULSE_DEBUG"
	EnvShowFPS       = "PULSE_SHOW_FPS"
	EnvMute          = "PULSE_MUTE"
	EnvScreenshotDir = "PULSE_SCREENSHOT_DIR"
	EnvScript        = "PULSE_SCRIPT"
)

// LoadConfig starts from DefaultConfig, applies the given .env files in
// order and then the process environment, which wins. Missing files and
// empty variables are skipped.
func LoadConfig(files ...string) (Config, error) {
	vars := make(map[string]string)
	for _, f := range files {
		m, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("pulse: read %s: %w", f, err)
		}
		for k, v := range m {
			vars[k] = v
		}
	}
	for _, k := range []string{
		EnvWidth, EnvHeight, EnvNodeCount, EnvRotationSpeed, EnvSeed,
		EnvDebug, EnvShowFPS, EnvMute, EnvScreenshotDir, EnvScript,
	} {
		if v, ok := os.LookupEnv(k); ok && v != "" {
			vars[k] = v
		}
	}

	cfg := DefaultConfig()
	if err := cfg.apply(vars); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(vars map[string]string) error {
	p := envParser{vars: vars}
	p.int(EnvWidth, &c.Width)
	p.int(EnvHeight, &c.Height)
	p.int(EnvNodeCount, &c.NodeCount)
	p.float(EnvRotationSpeed, &c.RotationSpeed)
	p.uint(EnvSeed, &c.Seed)
	p.bool(EnvDebug, &c.Debug)
	p.bool(EnvShowFPS, &c.ShowFPS)
	p.bool(EnvMute, &c.Mute)
	if v, ok := vars[EnvScreenshotDir]; ok {
		c.ScreenshotDir = v
	}
	if v, ok := vars[EnvScript]; ok {
		c.Script = v
	}
	return p.err
}

// envParser keeps the first parse error so apply reads as a flat list.
type envParser struct {
	vars map[string]string
	err  error
}

func (p *envParser) lookup(key string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v, ok := p.vars[key]
	return v, ok && v != ""
}

func (p *envParser) fail(key, v string, err error) {
	p.err = fmt.Errorf("pulse: %s=%q: %w", key, v, err)
}

func (p *envParser) int(key string, dst *int) {
	if v, ok := p.lookup(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (p *envParser) uint(key string, dst *uint64) {
	if v, ok := p.lookup(key); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (p *envParser) float(key string, dst *float64) {
	if v, ok := p.lookup(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = f
	}
}

func (p *envParser) bool(key string, dst *bool) {
	if v, ok := p.lookup(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = b
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports settings outside their allowed ranges.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("pulse: window %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	case c.NodeCount < MinNodeCount || c.NodeCount > MaxNodeCount:
		return fmt.Errorf("pulse: node count %d not in [%d, %d]: %w",
			c.NodeCount, MinNodeCount, MaxNodeCount, ErrInvalidConfig)
	case c.RotationSpeed < MinRotationSpeed || c.RotationSpeed > MaxRotationSpeed:
		return fmt.Errorf("pulse: rotation speed %g not in [%g, %g]: %w",
			c.RotationSpeed, MinRotationSpeed, MaxRotationSpeed, ErrInvalidConfig)
	}
	return nil
}
