package pulse

import "time"

// syntheticEvent is a single injected input event: a pointer sample, or a
// command key when key is not KeyNone. Coordinates are canvas pixels,
// identical to real mouse input.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	key     Key
}

// InjectPress queues a pointer press at (x, y). The event is consumed on
// the next Update.
func (g *Game) InjectPress(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move to (x, y) with the button held down.
// Use it between InjectPress and InjectRelease to simulate a drag.
func (g *Game) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectHover queues a pointer move to (x, y) with no button held.
func (g *Game) InjectHover(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectRelease queues a pointer release at (x, y).
func (g *Game) InjectRelease(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two frames.
func (g *Game) InjectClick(x, y float64) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectKey queues a command key.
func (g *Game) InjectKey(k Key) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{key: k})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same path as real input. Returns true if an event was
// consumed; real input is skipped for that frame.
func (g *Game) processInjectedInput(now time.Time) bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	if evt.key != KeyNone {
		g.router.Key(evt.key, now)
		return true
	}
	g.processPointer(evt.x, evt.y, evt.pressed, now)
	return true
}
