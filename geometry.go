package pulse

import (
	"math"
	"math/rand/v2"
)

// Node is one target on the ring.
//
// ID decides click order; the node's index in the session slice decides
// hit-test priority and the positional start/end triggers. The two are
// independent and must not be mixed up.
type Node struct {
	ID       int
	Angle    float64 // base angle in degrees, fixed at generation
	Radius   float64 // unanimated radius, fixed at generation
	Dilation DilationFunc
	Phase    float64 // solved so the dilation passes through Radius at t=0

	Active   bool
	Resolved bool
	Fill     Color

	// Derived pose, rewritten by Reflow and UpdatePoses.
	X, Y float64
	R    float64
}

// Layout describes the drawable canvas.
type Layout struct {
	Width, Height float64
	Header        float64
}

// Degenerate reports whether the canvas has no usable area.
func (l Layout) Degenerate() bool {
	return l.Width <= 0 || l.Height <= 0
}

// Center returns the ring center, midway between the header and the bottom edge.
func (l Layout) Center() (float64, float64) {
	return l.Width / 2, (l.Height + l.Header) / 2
}

// RingRadius returns the radius of the circle the nodes travel on.
func (l Layout) RingRadius() float64 {
	return math.Min(l.Width, l.Height-l.Header) / 3
}

// GenerateNodes creates count nodes with IDs 1..count in slice order. Angle
// slots are evenly spaced and assigned by a Fisher-Yates shuffle so that
// screen position says nothing about click order. Radius and waveform are
// drawn independently per node. ID 1 starts active.
func GenerateNodes(count int, rng *rand.Rand) []Node {
	step := 360 / float64(count)
	slots := make([]int, count)
	for i := range slots {
		slots[i] = i
	}
	rng.Shuffle(len(slots), func(i, j int) {
		slots[i], slots[j] = slots[j], slots[i]
	})

	nodes := make([]Node, count)
	for i := range nodes {
		n := &nodes[i]
		n.ID = i + 1
		n.Angle = float64(slots[i]) * step
		n.Radius = MinNodeRadius + rng.Float64()*(MaxNodeRadius-MinNodeRadius)
		if rng.Float64() > 0.5 {
			n.Dilation = DilationSine
		} else {
			n.Dilation = DilationCosine
		}
		n.Phase = dilationPhase(n.Dilation, n.Radius)
		n.R = n.Radius
		n.Fill = ColorDarkGrey
		if n.ID == 1 {
			n.Active = true
			n.Fill = ColorWhite
		}
	}
	return nodes
}

// Reflow recomputes node positions for a new canvas size. Angles and radii
// are untouched. Degenerate layouts leave positions as they were.
func Reflow(nodes []Node, l Layout, elapsed, speed float64) {
	if l.Degenerate() {
		return
	}
	cx, cy := l.Center()
	rr := l.RingRadius()
	for i := range nodes {
		nodes[i].X, nodes[i].Y = ringPoint(cx, cy, rr, nodes[i].Angle, elapsed, speed)
	}
}

// UpdatePoses writes the per-frame position and animated radius of every
// node. It only touches X, Y and R, so calling it twice with the same
// arguments yields the same result.
func UpdatePoses(nodes []Node, l Layout, elapsed, speed float64, dilate bool) {
	Reflow(nodes, l, elapsed, speed)
	for i := range nodes {
		n := &nodes[i]
		if dilate {
			n.R = DilatedRadius(n, elapsed)
		} else {
			n.R = n.Radius
		}
	}
}

func ringPoint(cx, cy, rr, baseAngle, elapsed, speed float64) (float64, float64) {
	deg := math.Mod(baseAngle+elapsed*speed, 360)
	rad := deg * math.Pi / 180
	return cx + rr*math.Cos(rad), cy + rr*math.Sin(rad)
}

const (
	dilationAmplitude = (MaxNodeRadius - MinNodeRadius) / 2
	dilationShift     = (MinNodeRadius + MaxNodeRadius) / 2
	dilationOmega     = 2 * math.Pi / DilationPeriod
)

// dilationPhase solves the horizontal shift that makes the waveform equal
// base at t=0.
func dilationPhase(fn DilationFunc, base float64) float64 {
	v := (base - dilationShift) / dilationAmplitude
	v = math.Max(-1, math.Min(1, v))
	if fn == DilationSine {
		return -math.Asin(v) / dilationOmega
	}
	return -math.Acos(v) / dilationOmega
}

// DilatedRadius returns the node's radius t seconds into play, clamped to
// [MinNodeRadius, MaxNodeRadius].
func DilatedRadius(n *Node, t float64) float64 {
	x := dilationOmega * (t - n.Phase)
	var w float64
	if n.Dilation == DilationSine {
		w = math.Sin(x)
	} else {
		w = math.Cos(x)
	}
	r := dilationAmplitude*w + dilationShift
	return math.Max(MinNodeRadius, math.Min(MaxNodeRadius, r))
}
