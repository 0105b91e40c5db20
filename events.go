package pulse

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a session lifecycle event.
type EventType uint8

const (
	EventStarted  EventType = iota // setup -> play
	EventResolved                  // active target clicked
	EventMissed                    // click in play that did not hit the active target
	EventFinished                  // play -> end
	EventAborted                   // long press abandoned the run
	EventReset                     // back to setup with a fresh layout
)

func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "started"
	case EventResolved:
		return "resolved"
	case EventMissed:
		return "missed"
	case EventFinished:
		return "finished"
	case EventAborted:
		return "aborted"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// SessionEvent carries one lifecycle change. Fields not relevant to Type
// are zero.
type SessionEvent struct {
	Type     EventType
	RunID    uuid.UUID // zero outside a run
	TargetID int       // ID of the node involved, or the current target
	Index    int       // slice index of the clicked node, NoNode if none
	Elapsed  float64   // seconds
	NewBest  bool      // EventFinished only
	At       time.Time
}

// EventSink is the interface for optional event consumers such as an ECS
// world. When set on a Session, lifecycle events are forwarded to it.
type EventSink interface {
	EmitEvent(event SessionEvent)
}

// Cues is the interface for optional audio feedback.
type Cues interface {
	Hit()
	Miss()
	Finish(newBest bool)
}
