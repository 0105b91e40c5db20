package pulse

import (
	"math"
	"math/rand/v2"
	"testing"
)

const geomEpsilon = 1e-9

var testLayout = Layout{Width: 800, Height: 600, Header: HeaderHeight}

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func TestLayout(t *testing.T) {
	cx, cy := testLayout.Center()
	if cx != 400 || cy != 325 {
		t.Errorf("Center() = (%v, %v), want (400, 325)", cx, cy)
	}
	if got, want := testLayout.RingRadius(), 550.0/3; math.Abs(got-want) > geomEpsilon {
		t.Errorf("RingRadius() = %v, want %v", got, want)
	}

	tall := Layout{Width: 300, Height: 900, Header: HeaderHeight}
	if got := tall.RingRadius(); got != 100 {
		t.Errorf("RingRadius() on a tall canvas = %v, want 100", got)
	}

	for _, l := range []Layout{
		{Width: 0, Height: 600},
		{Width: 800, Height: 0},
		{Width: -1, Height: -1},
	} {
		if !l.Degenerate() {
			t.Errorf("%+v should be degenerate", l)
		}
	}
	if testLayout.Degenerate() {
		t.Error("800x600 should not be degenerate")
	}
}

func TestGenerateNodes_Permutation(t *testing.T) {
	for n := MinNodeCount; n <= MaxNodeCount; n++ {
		for seed := uint64(1); seed <= 20; seed++ {
			nodes := GenerateNodes(n, testRNG(seed))
			if len(nodes) != n {
				t.Fatalf("n=%d: got %d nodes", n, len(nodes))
			}

			step := 360 / float64(n)
			seen := make([]bool, n)
			active := 0
			for i, nd := range nodes {
				if nd.ID != i+1 {
					t.Errorf("n=%d seed=%d: nodes[%d].ID = %d, want %d", n, seed, i, nd.ID, i+1)
				}
				slot := int(math.Round(nd.Angle / step))
				if slot < 0 || slot >= n || math.Abs(float64(slot)*step-nd.Angle) > geomEpsilon {
					t.Fatalf("n=%d seed=%d: angle %v is not a slot", n, seed, nd.Angle)
				}
				if seen[slot] {
					t.Errorf("n=%d seed=%d: slot %d used twice", n, seed, slot)
				}
				seen[slot] = true

				if nd.Radius < MinNodeRadius || nd.Radius > MaxNodeRadius {
					t.Errorf("n=%d seed=%d: radius %v out of range", n, seed, nd.Radius)
				}
				if nd.R != nd.Radius {
					t.Errorf("n=%d seed=%d: initial R %v != Radius %v", n, seed, nd.R, nd.Radius)
				}
				if nd.Resolved {
					t.Errorf("n=%d seed=%d: node %d resolved at generation", n, seed, nd.ID)
				}
				if nd.Active {
					active++
					if nd.ID != 1 || nd.Fill != ColorWhite {
						t.Errorf("n=%d seed=%d: unexpected active node %+v", n, seed, nd)
					}
				} else if nd.Fill != ColorDarkGrey {
					t.Errorf("n=%d seed=%d: inactive node %d fill = %+v", n, seed, nd.ID, nd.Fill)
				}
			}
			if active != 1 {
				t.Errorf("n=%d seed=%d: %d active nodes, want 1", n, seed, active)
			}
		}
	}
}

func TestGenerateNodes_Deterministic(t *testing.T) {
	a := GenerateNodes(6, testRNG(7))
	b := GenerateNodes(6, testRNG(7))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("node %d differs for the same seed: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestDilatedRadius_ContinuousAtStart(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		for _, n := range GenerateNodes(MaxNodeCount, testRNG(seed)) {
			if got := DilatedRadius(&n, 0); math.Abs(got-n.Radius) > geomEpsilon {
				t.Errorf("seed=%d node %d (%v): DilatedRadius(0) = %v, want %v",
					seed, n.ID, n.Dilation, got, n.Radius)
			}
		}
	}
}

func TestDilatedRadius_Extremes(t *testing.T) {
	for _, fn := range []DilationFunc{DilationSine, DilationCosine} {
		for _, base := range []float64{MinNodeRadius, dilationShift, MaxNodeRadius} {
			n := Node{Radius: base, Dilation: fn, Phase: dilationPhase(fn, base)}
			if got := DilatedRadius(&n, 0); math.Abs(got-base) > 1e-6 {
				t.Errorf("fn=%d base=%v: DilatedRadius(0) = %v", fn, base, got)
			}
		}
	}
}

func TestDilatedRadius_RangeAndPeriod(t *testing.T) {
	nodes := GenerateNodes(MaxNodeCount, testRNG(3))
	for i := range nodes {
		n := &nodes[i]
		for step := 0; step <= 200; step++ {
			tm := float64(step) * 0.05
			r := DilatedRadius(n, tm)
			if r < MinNodeRadius || r > MaxNodeRadius {
				t.Fatalf("node %d: radius %v at t=%v out of range", n.ID, r, tm)
			}
			if again := DilatedRadius(n, tm+DilationPeriod); math.Abs(again-r) > 1e-6 {
				t.Fatalf("node %d: radius at t=%v (%v) and one period later (%v) differ", n.ID, tm, r, again)
			}
		}
	}
}

func TestDilatedRadius_Moves(t *testing.T) {
	n := Node{Radius: dilationShift, Dilation: DilationSine, Phase: dilationPhase(DilationSine, dilationShift)}
	// A quarter period after the midpoint the sine reaches its peak.
	if got := DilatedRadius(&n, DilationPeriod/4); math.Abs(got-MaxNodeRadius) > 1e-6 {
		t.Errorf("quarter period radius = %v, want %v", got, MaxNodeRadius)
	}
}

func TestUpdatePoses_Position(t *testing.T) {
	nodes := []Node{
		{ID: 1, Angle: 0, Radius: 20, R: 20},
		{ID: 2, Angle: 90, Radius: 20, R: 20},
	}
	rr := testLayout.RingRadius()

	UpdatePoses(nodes, testLayout, 0, 5, false)
	if math.Abs(nodes[0].X-(400+rr)) > geomEpsilon || math.Abs(nodes[0].Y-325) > geomEpsilon {
		t.Errorf("node 1 at (%v, %v), want (%v, 325)", nodes[0].X, nodes[0].Y, 400+rr)
	}
	if math.Abs(nodes[1].X-400) > geomEpsilon || math.Abs(nodes[1].Y-(325+rr)) > geomEpsilon {
		t.Errorf("node 2 at (%v, %v), want (400, %v)", nodes[1].X, nodes[1].Y, 325+rr)
	}

	// 2s at 5 deg/s rotates by 10 degrees.
	UpdatePoses(nodes, testLayout, 2, 5, false)
	rad := 10 * math.Pi / 180
	wantX, wantY := 400+rr*math.Cos(rad), 325+rr*math.Sin(rad)
	if math.Abs(nodes[0].X-wantX) > geomEpsilon || math.Abs(nodes[0].Y-wantY) > geomEpsilon {
		t.Errorf("rotated node 1 at (%v, %v), want (%v, %v)", nodes[0].X, nodes[0].Y, wantX, wantY)
	}
	if nodes[0].Angle != 0 {
		t.Errorf("Angle mutated to %v", nodes[0].Angle)
	}
}

func TestUpdatePoses_Idempotent(t *testing.T) {
	nodes := GenerateNodes(6, testRNG(11))
	UpdatePoses(nodes, testLayout, 3.3, 7, true)
	first := append([]Node(nil), nodes...)
	UpdatePoses(nodes, testLayout, 3.3, 7, true)
	for i := range nodes {
		if nodes[i] != first[i] {
			t.Errorf("node %d changed on second update: %+v vs %+v", i, first[i], nodes[i])
		}
	}
}

func TestUpdatePoses_DilateFlag(t *testing.T) {
	nodes := GenerateNodes(6, testRNG(5))
	UpdatePoses(nodes, testLayout, 1.2, 5, false)
	for _, n := range nodes {
		if n.R != n.Radius {
			t.Errorf("node %d: R = %v without dilation, want %v", n.ID, n.R, n.Radius)
		}
	}
	UpdatePoses(nodes, testLayout, 1.2, 5, true)
	for i := range nodes {
		if want := DilatedRadius(&nodes[i], 1.2); nodes[i].R != want {
			t.Errorf("node %d: R = %v with dilation, want %v", nodes[i].ID, nodes[i].R, want)
		}
	}
}

func TestReflow(t *testing.T) {
	nodes := GenerateNodes(5, testRNG(9))
	Reflow(nodes, testLayout, 0, 5)
	before := append([]Node(nil), nodes...)

	Reflow(nodes, Layout{Width: 400, Height: 300, Header: HeaderHeight}, 0, 5)
	moved := false
	for i := range nodes {
		if nodes[i].Angle != before[i].Angle || nodes[i].Radius != before[i].Radius {
			t.Errorf("node %d: angle or radius changed on reflow", i)
		}
		if nodes[i].X != before[i].X || nodes[i].Y != before[i].Y {
			moved = true
		}
	}
	if !moved {
		t.Error("reflow to a smaller canvas did not move any node")
	}
}

func TestReflow_Degenerate(t *testing.T) {
	nodes := GenerateNodes(4, testRNG(2))
	Reflow(nodes, testLayout, 0, 5)
	before := append([]Node(nil), nodes...)

	for _, l := range []Layout{
		{Width: 0, Height: 0, Header: HeaderHeight},
		{Width: 800, Height: 0, Header: HeaderHeight},
		{Width: 0, Height: 600, Header: HeaderHeight},
	} {
		Reflow(nodes, l, 0, 5)
		UpdatePoses(nodes, l, 0, 5, false)
		for i := range nodes {
			if nodes[i].X != before[i].X || nodes[i].Y != before[i].Y {
				t.Errorf("layout %+v moved node %d", l, i)
			}
			if math.IsNaN(nodes[i].X) || math.IsNaN(nodes[i].Y) {
				t.Errorf("layout %+v produced NaN", l)
			}
		}
	}
}
