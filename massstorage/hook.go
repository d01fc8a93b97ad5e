package massstorage

import (
	"github.com/sarchlab/massstorage/sim"
	"github.com/sarchlab/massstorage/thing"
	"github.com/sarchlab/massstorage/world"
)

// Hook positions of a device. The hook item is a DeviceEvent.
var (
	// HookPosItemAccepted triggers after an item is absorbed.
	HookPosItemAccepted = &sim.HookPos{Name: "ItemAccepted"}

	// HookPosOutputSpawned triggers after a new stack is put on the
	// footprint.
	HookPosOutputSpawned = &sim.HookPos{Name: "OutputSpawned"}

	// HookPosContentsSpoiled triggers after the contents rotted away.
	HookPosContentsSpoiled = &sim.HookPos{Name: "ContentsSpoiled"}

	// HookPosContentsDropped triggers after the contents are ejected.
	HookPosContentsDropped = &sim.HookPos{Name: "ContentsDropped"}
)

// DeviceEvent describes something that happened to the contents of a device.
type DeviceEvent struct {
	Device      string
	Def         *thing.Def
	Count       int
	RotProgress float64
	At          world.Cell
}
