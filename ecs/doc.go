// Package ecs provides ECS adapters for pulse's session events.
//
// The adapter is [NewDonburiSink], which bridges session lifecycle events
// (start, resolve, miss, finish, abort, reset) into a [Donburi] world as
// typed events. Subscribe to [SessionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	game.Router().Session().SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
