package pulse

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// playTickInterval is how often the play timer refreshes elapsed time.
const playTickInterval = 100 * time.Millisecond

// playTimer is the periodic tick live only during play. It is armed on
// Start and disarmed on every way out of play.
type playTimer struct {
	armed bool
	start time.Time
	due   time.Time
}

func (t *playTimer) arm(now time.Time) {
	t.armed = true
	t.start = now
	t.due = now.Add(playTickInterval)
}

func (t *playTimer) stop() {
	t.armed = false
}

// ClickOutcome reports what a click in play did.
type ClickOutcome struct {
	Resolved bool // the active target was hit and resolved
	Ended    bool // the session moved to ModeEnd
	Complete bool // every target was resolved
	NewBest  bool // the finish time became the best time
}

// Session owns the node ring and the setup/play/end state machine.
// All methods run on the game goroutine; nothing here is safe for
// concurrent use.
type Session struct {
	mode      Mode
	nodes     []Node
	nodeCount int
	speed     float64
	target    int
	elapsed   float64
	best      float64
	hasBest   bool
	header    string
	layout    Layout
	timer     playTimer
	runID     uuid.UUID

	rng  *rand.Rand
	sink EventSink
	log  *Logger
}

// NewSession creates a session in setup mode with a fresh layout. The node
// count and rotation speed are clamped into range. A zero seed picks a
// random one.
func NewSession(cfg Config) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	s := &Session{
		nodeCount: clampInt(cfg.NodeCount, MinNodeCount, MaxNodeCount),
		speed:     clampFloat(cfg.RotationSpeed, MinRotationSpeed, MaxRotationSpeed),
		layout:    Layout{Width: float64(cfg.Width), Height: float64(cfg.Height), Header: HeaderHeight},
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	s.reset()
	return s
}

// SetEventSink sets the optional lifecycle event consumer.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetLogger sets the logger used for lifecycle debug lines.
func (s *Session) SetLogger(l *Logger) {
	s.log = l
}

// Mode returns the current phase.
func (s *Session) Mode() Mode { return s.mode }

// Nodes returns the node slice. Callers must not mutate it.
func (s *Session) Nodes() []Node { return s.nodes }

// NodeCount returns the configured number of nodes.
func (s *Session) NodeCount() int { return s.nodeCount }

// RotationSpeed returns the ring speed in degrees per second.
func (s *Session) RotationSpeed() float64 { return s.speed }

// Target returns the ID of the node that must be clicked next.
// NodeCount()+1 means every node is resolved.
func (s *Session) Target() int { return s.target }

// Elapsed returns the play time in seconds as of the last tick.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Best returns the best finish time and whether one exists.
func (s *Session) Best() (float64, bool) { return s.best, s.hasBest }

// Header returns the status line text.
func (s *Session) Header() string { return s.header }

// Layout returns the current canvas layout.
func (s *Session) Layout() Layout { return s.layout }

// RunID returns the identifier of the current run, or uuid.Nil outside play.
func (s *Session) RunID() uuid.UUID { return s.runID }

// TimerArmed reports whether the play tick is live.
func (s *Session) TimerArmed() bool { return s.timer.armed }

// Poses recomputes the derived pose of every node for the current time and
// mode and returns the node slice. Dilation applies outside setup.
func (s *Session) Poses() []Node {
	UpdatePoses(s.nodes, s.layout, s.elapsed, s.speed, s.mode != ModeSetup)
	return s.nodes
}

// Resize updates the canvas and moves nodes to their new positions.
// Zero-sized canvases keep the previous positions.
func (s *Session) Resize(width, height float64) {
	s.layout.Width = width
	s.layout.Height = height
	Reflow(s.nodes, s.layout, s.elapsed, s.speed)
}

// Reshuffle generates a new layout. Setup only.
func (s *Session) Reshuffle() bool {
	if s.mode != ModeSetup {
		return false
	}
	s.regenerate()
	return true
}

// AdjustNodeCount changes the node count by delta within
// [MinNodeCount, MaxNodeCount] and regenerates the layout. Setup only.
func (s *Session) AdjustNodeCount(delta int) bool {
	if s.mode != ModeSetup {
		return false
	}
	n := clampInt(s.nodeCount+delta, MinNodeCount, MaxNodeCount)
	if n == s.nodeCount {
		return false
	}
	s.nodeCount = n
	s.regenerate()
	return true
}

// AdjustRotationSpeed changes the rotation speed by delta within
// [MinRotationSpeed, MaxRotationSpeed]. Setup only.
func (s *Session) AdjustRotationSpeed(delta float64) bool {
	if s.mode != ModeSetup {
		return false
	}
	v := clampFloat(s.speed+delta, MinRotationSpeed, MaxRotationSpeed)
	if v == s.speed {
		return false
	}
	s.speed = v
	return true
}

// Start moves from setup to play and arms the play timer.
func (s *Session) Start(now time.Time) bool {
	if s.mode != ModeSetup {
		return false
	}
	s.mode = ModePlay
	s.elapsed = 0
	s.runID = uuid.New()
	s.timer.arm(now)
	s.log.Debugf("run %s started: %d nodes at %.0f deg/s", s.runID, s.nodeCount, s.speed)
	s.emit(SessionEvent{Type: EventStarted, TargetID: s.target, Index: NoNode, At: now})
	return true
}

// Tick refreshes elapsed time and the header when the play timer is due.
// It reports whether a tick fired. Missed ticks are not replayed.
func (s *Session) Tick(now time.Time) bool {
	if !s.timer.armed || now.Before(s.timer.due) {
		return false
	}
	s.elapsed = now.Sub(s.timer.start).Seconds()
	s.header = formatSeconds(s.elapsed)
	for !s.timer.due.After(now) {
		s.timer.due = s.timer.due.Add(playTickInterval)
	}
	return true
}

// Click resolves a click on the node at index during play. index may be
// NoNode.
//
// Clicking the last node in slice order ends the game and stops the timer
// before anything else is checked, whether or not that node is the active
// target. Completion by ID ends it as well, followed by scoring.
func (s *Session) Click(index int, now time.Time) ClickOutcome {
	var out ClickOutcome
	if s.mode != ModePlay {
		return out
	}

	if index == len(s.nodes)-1 {
		s.timer.stop()
		s.mode = ModeEnd
		out.Ended = true
	}

	if index < 0 || index >= len(s.nodes) || !s.nodes[index].Active {
		s.emit(SessionEvent{Type: EventMissed, TargetID: s.target, Index: index, Elapsed: s.elapsed, At: now})
		if out.Ended {
			s.finish(out, now)
		}
		return out
	}

	n := &s.nodes[index]
	n.Active = false
	n.Resolved = true
	n.Fill = ColorFromHSL(float64(s.rng.IntN(360)), 1, 0.5)
	out.Resolved = true
	s.emit(SessionEvent{Type: EventResolved, TargetID: n.ID, Index: index, Elapsed: s.elapsed, At: now})

	s.target++
	if next := s.nodeIndexByID(s.target); next != NoNode {
		s.nodes[next].Active = true
		s.nodes[next].Fill = ColorWhite
	}

	if s.target > s.nodeCount {
		s.timer.stop()
		s.mode = ModeEnd
		out.Ended = true
		out.Complete = true
		out.NewBest = s.score()
	}
	if out.Ended {
		s.finish(out, now)
	}
	return out
}

// Cheat clicks the active target on the player's behalf. Play only; a
// no-op when nothing is active.
func (s *Session) Cheat(now time.Time) ClickOutcome {
	if s.mode != ModePlay {
		return ClickOutcome{}
	}
	idx := s.ActiveIndex()
	if idx == NoNode {
		return ClickOutcome{}
	}
	return s.Click(idx, now)
}

// Abort abandons a run in play: the timer stops and the session returns
// straight to setup with a fresh layout.
func (s *Session) Abort(now time.Time) bool {
	if s.mode != ModePlay {
		return false
	}
	s.timer.stop()
	s.mode = ModeEnd
	s.log.Debugf("run %s aborted at %.1fs", s.runID, s.elapsed)
	s.emit(SessionEvent{Type: EventAborted, TargetID: s.target, Index: NoNode, Elapsed: s.elapsed, At: now})
	s.reset()
	s.emit(SessionEvent{Type: EventReset, TargetID: s.target, Index: NoNode, At: now})
	return true
}

// Restart returns from end to setup with a fresh layout.
func (s *Session) Restart(now time.Time) bool {
	if s.mode != ModeEnd {
		return false
	}
	s.log.Debugf("run %s closed, back to setup", s.runID)
	s.reset()
	s.emit(SessionEvent{Type: EventReset, TargetID: s.target, Index: NoNode, At: now})
	return true
}

// ActiveIndex returns the slice index of the active node, or NoNode.
func (s *Session) ActiveIndex() int {
	for i := range s.nodes {
		if s.nodes[i].Active {
			return i
		}
	}
	return NoNode
}

func (s *Session) nodeIndexByID(id int) int {
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			return i
		}
	}
	return NoNode
}

// score compares the final time with the best and writes the result header.
func (s *Session) score() bool {
	t := formatSeconds(s.elapsed)
	if !s.hasBest || s.elapsed < s.best {
		s.best = s.elapsed
		s.hasBest = true
		s.header = t + " (new best!)"
		return true
	}
	s.header = fmt.Sprintf("%s (best: %s)", t, formatSeconds(s.best))
	return false
}

func (s *Session) finish(out ClickOutcome, now time.Time) {
	s.log.Debugf("run %s ended at %.1fs (complete=%v, best=%v)", s.runID, s.elapsed, out.Complete, out.NewBest)
	s.emit(SessionEvent{
		Type: EventFinished, TargetID: s.target, Index: NoNode,
		Elapsed: s.elapsed, NewBest: out.NewBest, At: now,
	})
}

func (s *Session) reset() {
	s.timer.stop()
	s.header = setupHeader
	s.target = 1
	s.elapsed = 0
	s.runID = uuid.Nil
	s.mode = ModeSetup
	s.regenerate()
}

func (s *Session) regenerate() {
	s.nodes = GenerateNodes(s.nodeCount, s.rng)
	Reflow(s.nodes, s.layout, s.elapsed, s.speed)
}

func (s *Session) emit(ev SessionEvent) {
	if s.sink == nil {
		return
	}
	ev.RunID = s.runID
	s.sink.EmitEvent(ev)
}

// formatSeconds renders seconds truncated to tenths, e.g. 12.34 -> "12.3".
func formatSeconds(sec float64) string {
	return fmt.Sprintf("%.1f", math.Floor(sec*10+1e-9)/10)
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
