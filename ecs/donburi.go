package ecs

import (
	"github.com/phanxgames/pulse"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SessionEventType is the Donburi event type for pulse session events.
// Subscribe to this in your ECS systems to receive start, resolve, miss,
// finish, abort and reset events.
var SessionEventType = events.NewEventType[pulse.SessionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Session events are published to SessionEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) pulse.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event pulse.SessionEvent) {
	SessionEventType.Publish(s.world, event)
}
