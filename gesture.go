package pulse

import (
	"math"
	"time"
)

const (
	defaultLongPressMove = 10.0 // pixels
	defaultLongPressHold = time.Second
)

// PointerKind identifies a raw pointer event.
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// PointerEvent is a raw pointer sample delivered by the host.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
	At   time.Time
}

// LongPress is the gesture synthesized when a press is held in place long
// enough. Position and time are taken from the release.
type LongPress struct {
	X, Y float64
	At   time.Time
}

type gesturePhase uint8

const (
	gestureIdle gesturePhase = iota
	gesturePressed
)

// GestureTranslator turns raw press/move/release events into long-press
// gestures. It is a Mealy machine: every raw event yields at most one
// gesture and the result depends only on the event and the private state.
//
// Feed it every raw pointer event, including the ones that are also
// dispatched normally; consumers only ever see the synthesized LongPress.
type GestureTranslator struct {
	// MoveThreshold is the distance from the press anchor beyond which the
	// press is treated as a drag and abandoned.
	MoveThreshold float64
	// HoldThreshold is the minimum press duration for a long press.
	HoldThreshold time.Duration

	phase     gesturePhase
	anchorX   float64
	anchorY   float64
	pressedAt time.Time
}

// NewGestureTranslator returns an idle translator with the default 10 px
// movement and 1 s hold thresholds.
func NewGestureTranslator() *GestureTranslator {
	return &GestureTranslator{
		MoveThreshold: defaultLongPressMove,
		HoldThreshold: defaultLongPressHold,
	}
}

// Pressed reports whether a candidate long press is in progress.
func (g *GestureTranslator) Pressed() bool {
	return g.phase == gesturePressed
}

// Reset drops any press in progress.
func (g *GestureTranslator) Reset() {
	g.phase = gestureIdle
}

// Translate advances the state machine by one raw event. The second return
// value is true when a long press was recognized.
func (g *GestureTranslator) Translate(ev PointerEvent) (LongPress, bool) {
	switch g.phase {
	case gestureIdle:
		if ev.Kind == PointerDown {
			g.phase = gesturePressed
			g.anchorX = ev.X
			g.anchorY = ev.Y
			g.pressedAt = ev.At
		}

	case gesturePressed:
		switch ev.Kind {
		case PointerMove:
			dx := ev.X - g.anchorX
			dy := ev.Y - g.anchorY
			if math.Sqrt(dx*dx+dy*dy) > g.MoveThreshold {
				g.phase = gestureIdle
			}
		case PointerUp:
			g.phase = gestureIdle
			if ev.At.Sub(g.pressedAt) >= g.HoldThreshold {
				return LongPress{X: ev.X, Y: ev.Y, At: ev.At}, true
			}
		}
	}
	return LongPress{}, false
}
