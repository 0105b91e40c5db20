// Package pulse is a timed reflex game for [Ebitengine].
//
// A ring of targets rotates around the middle of the window. Click them in
// ascending ID order as fast as you can; the active target is drawn white
// and, once play starts, every target breathes between a minimum and a
// maximum radius. Clicking the last target stops the clock and compares the
// time with the best one so far.
//
// # Quick start
//
//	cfg := pulse.DefaultConfig()
//	game, err := pulse.NewGame(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ebiten.SetWindowSize(cfg.Width, cfg.Height)
//	if err := ebiten.RunGame(game); err != nil {
//		log.Fatal(err)
//	}
//
// # Structure
//
// The game logic has no rendering dependency and can be driven directly in
// tests:
//
//   - [GenerateNodes], [UpdatePoses] and [Reflow] lay out the ring and
//     compute each frame's pose (rotation plus radius dilation).
//   - [HitTest] resolves a point against the current poses.
//   - [GestureTranslator] turns raw press/move/release events into
//     long-press gestures.
//   - [Session] owns the setup/play/end state machine, scoring and the play
//     timer.
//   - [Router] maps host input onto the session and keeps the hover,
//     wrong-click and click-burst state.
//
// [Game] adapts all of this to [ebiten.Game], and [Renderer] draws the
// [Frame] a Router produces.
//
// # Controls
//
//	click        start (target in slot 0) / hit the active target
//	hold 1s      abandon the current run
//	space        reshuffle in setup, restart after a run
//	[ ]          fewer / more targets (setup)
//	{ }          slower / faster rotation (setup)
//	c            resolve the active target (cheat)
//
// [Ebitengine]: https://ebitengine.org
package pulse
