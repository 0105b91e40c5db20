package pulse

import (
	"strconv"
	"time"
)

// Router maps host input to session operations and owns the purely visual
// state around them: the hovered node, the wrong-click background flash
// and the click burst.
type Router struct {
	session  *Session
	gestures *GestureTranslator
	cues     Cues

	hovered      int
	incorrect    bool
	burst        *ClickBurst
	swallowClick bool // the release that ended a long press must not also click

	views []NodeView
}

// NewRouter creates a router driving s.
func NewRouter(s *Session) *Router {
	return &Router{
		session:  s,
		gestures: NewGestureTranslator(),
		hovered:  NoNode,
	}
}

// SetCues sets the optional audio feedback.
func (r *Router) SetCues(c Cues) {
	r.cues = c
}

// Session returns the driven session.
func (r *Router) Session() *Session { return r.session }

// Hovered returns the slice index of the node under the pointer, or NoNode.
func (r *Router) Hovered() int { return r.hovered }

// Incorrect reports whether the wrong-click background is showing.
func (r *Router) Incorrect() bool { return r.incorrect }

// Burst returns the click burst in flight, or nil.
func (r *Router) Burst() *ClickBurst { return r.burst }

// Resize forwards a canvas size change.
func (r *Router) Resize(width, height float64) {
	r.session.Resize(width, height)
}

// PointerMove updates the hover highlight.
func (r *Router) PointerMove(x, y float64, at time.Time) {
	r.translate(PointerEvent{Kind: PointerMove, X: x, Y: y, At: at})
	r.hovered = HitTest(r.session.Poses(), x, y)
}

// PointerDown flags the background when the press misses the active target.
func (r *Router) PointerDown(x, y float64, at time.Time) {
	r.swallowClick = false
	r.translate(PointerEvent{Kind: PointerDown, X: x, Y: y, At: at})
	nodes := r.session.Poses()
	idx := HitTest(nodes, x, y)
	if idx == NoNode || !nodes[idx].Active {
		r.incorrect = true
		if r.cues != nil && r.session.Mode() == ModePlay {
			r.cues.Miss()
		}
	}
}

// PointerUp clears the wrong-click flag and delivers a long press if the
// release completed one.
func (r *Router) PointerUp(x, y float64, at time.Time) {
	r.incorrect = false
	r.translate(PointerEvent{Kind: PointerUp, X: x, Y: y, At: at})
}

// Click handles a click or tap. In setup a click on slice index 0 starts
// the game, and the same click then counts as the first play click.
func (r *Router) Click(x, y float64, at time.Time) {
	if r.swallowClick {
		r.swallowClick = false
		return
	}
	s := r.session
	nodes := s.Poses()
	idx := HitTest(nodes, x, y)

	if s.Mode() != ModeEnd && idx != NoNode && nodes[idx].Active {
		r.burst = NewClickBurst(nodes[idx].X, nodes[idx].Y, at)
		if r.cues != nil {
			r.cues.Hit()
		}
	}

	if s.Mode() == ModeSetup && idx == 0 {
		s.Start(at)
	}
	if s.Mode() == ModePlay {
		r.finished(s.Click(idx, at))
	}
}

// Key handles a command key.
func (r *Router) Key(k Key, at time.Time) {
	s := r.session
	switch k {
	case KeySpace:
		switch s.Mode() {
		case ModeSetup:
			s.Reshuffle()
			r.hovered = NoNode
		case ModeEnd:
			if s.Restart(at) {
				r.clearTransient()
			}
		}
	case KeyCheat:
		r.finished(s.Cheat(at))
	case KeyFewerNodes:
		if s.AdjustNodeCount(-1) {
			r.hovered = NoNode
		}
	case KeyMoreNodes:
		if s.AdjustNodeCount(1) {
			r.hovered = NoNode
		}
	case KeySlower:
		s.AdjustRotationSpeed(-1)
	case KeyFaster:
		s.AdjustRotationSpeed(1)
	}
}

// Update runs the play timer and the click burst. Call once per frame.
func (r *Router) Update(now time.Time) {
	r.session.Tick(now)
	if r.burst != nil {
		r.burst.Update(now)
		if r.burst.Done {
			r.burst = nil
		}
	}
}

func (r *Router) translate(ev PointerEvent) {
	lp, ok := r.gestures.Translate(ev)
	if !ok {
		return
	}
	// The release's own click is dropped before the abort, so a long press
	// on the last slot aborts the run instead of ending it.
	r.swallowClick = true
	if r.session.Abort(lp.At) {
		r.clearTransient()
	}
}

// releaseWithoutClick tells the router that the last release will not be
// followed by a click, so no pending swallow may outlive it.
func (r *Router) releaseWithoutClick() {
	r.swallowClick = false
}

func (r *Router) finished(out ClickOutcome) {
	if out.Ended && r.cues != nil {
		r.cues.Finish(out.NewBest)
	}
}

// clearTransient drops visual state that must not outlive a session.
func (r *Router) clearTransient() {
	r.burst = nil
	r.incorrect = false
	r.hovered = NoNode
}

// NodeView is the drawable state of one node.
type NodeView struct {
	X, Y, R float64
	Fill    Color
	Label   string // empty when the ID is not revealed yet
	Hovered bool
}

// BurstView is the drawable state of the click burst.
type BurstView struct {
	Active  bool
	X, Y, R float64
}

// Frame is everything needed to draw one frame.
type Frame struct {
	Width, Height float64
	Header        float64
	Background    Color
	Status        string
	Nodes         []NodeView
	Burst         BurstView
}

// Frame builds the drawable snapshot for the current state. Node poses are
// recomputed, which is idempotent; no session state changes otherwise. The
// returned Nodes slice is reused by the next call.
func (r *Router) Frame() Frame {
	s := r.session
	nodes := s.Poses()
	r.views = r.views[:0]
	for i := range nodes {
		n := &nodes[i]
		v := NodeView{X: n.X, Y: n.Y, R: n.R, Fill: n.Fill, Hovered: i == r.hovered}
		if n.ID <= s.Target() {
			v.Label = strconv.Itoa(n.ID)
		}
		r.views = append(r.views, v)
	}

	l := s.Layout()
	f := Frame{
		Width:      l.Width,
		Height:     l.Height,
		Header:     l.Header,
		Background: ColorBlack,
		Status:     s.Header(),
		Nodes:      r.views,
	}
	if r.incorrect {
		f.Background = ColorDarkRed
	}
	if r.burst != nil {
		f.Burst = BurstView{Active: true, X: r.burst.X, Y: r.burst.Y, R: r.burst.Radius}
	}
	return f
}
