// Package tracing records what happens to the contents of storage devices.
package tracing

import (
	"github.com/sarchlab/massstorage/massstorage"
	"github.com/sarchlab/massstorage/sim"
)

// Event is one recorded change of a device's contents.
type Event struct {
	Tick        uint64
	Device      string
	What        string
	Kind        string
	Count       int
	RotProgress float64
	X           int
	Z           int
}

// Kinds of events.
const (
	WhatAccept = "accept"
	WhatOutput = "output"
	WhatSpoil  = "spoil"
	WhatDrop   = "drop"
)

// A Tracer collects device events.
type Tracer interface {
	RecordEvent(e Event)
}

var whatByPos = map[*sim.HookPos]string{
	massstorage.HookPosItemAccepted:    WhatAccept,
	massstorage.HookPosOutputSpawned:   WhatOutput,
	massstorage.HookPosContentsSpoiled: WhatSpoil,
	massstorage.HookPosContentsDropped: WhatDrop,
}

// EventFromHook converts a device hook context into an Event. It returns false
// if the context does not describe a device event.
func EventFromHook(ctx sim.HookCtx, tick uint64) (Event, bool) {
	what, ok := whatByPos[ctx.Pos]
	if !ok {
		return Event{}, false
	}

	de, ok := ctx.Item.(massstorage.DeviceEvent)
	if !ok {
		return Event{}, false
	}

	kind := ""
	if de.Def != nil {
		kind = de.Def.Name
	}

	return Event{
		Tick:        tick,
		Device:      de.Device,
		What:        what,
		Kind:        kind,
		Count:       de.Count,
		RotProgress: de.RotProgress,
		X:           de.At.X,
		Z:           de.At.Z,
	}, true
}
