package pulse

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ClickBurst is the expanding ring drawn where an active target was hit.
// It runs on wall-clock time, independent of the game mode, and marks
// itself Done once the ring reaches its final radius.
//
// There is no animation manager; the router calls Update each frame.
type ClickBurst struct {
	X, Y   float64
	Radius float64
	Done   bool

	tween *gween.Tween
	last  time.Time
}

// NewClickBurst starts a burst centred on (x, y) at wall-clock time start.
func NewClickBurst(x, y float64, start time.Time) *ClickBurst {
	return &ClickBurst{
		X:      x,
		Y:      y,
		Radius: ClickBurstStartRadius,
		tween:  gween.New(ClickBurstStartRadius, ClickBurstEndRadius, ClickBurstDuration, ease.Linear),
		last:   start,
	}
}

// Update advances the ring to wall-clock time now. Calls with a time at or
// before the previous one leave the ring where it is.
func (b *ClickBurst) Update(now time.Time) {
	if b.Done {
		return
	}
	dt := now.Sub(b.last)
	if dt <= 0 {
		return
	}
	b.last = now
	val, finished := b.tween.Update(float32(dt.Seconds()))
	b.Radius = float64(val)
	b.Done = finished
}
