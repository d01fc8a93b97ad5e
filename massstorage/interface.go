package massstorage

import (
	"github.com/sarchlab/massstorage/thing"
	"github.com/sarchlab/massstorage/world"
)

// Local abstraction layer for the host world. The package depends on these
// interfaces only so that tests can mock the host.
//
//go:generate mockgen -destination "mock_local_test.go" -package $GOPACKAGE -write_package_comment=false -source interface.go

// World provides the spatial queries and item mutations used by the device.
// It is implemented by world.Map.
type World interface {
	ItemsAt(c world.Cell) []*thing.Thing
	BuildingsAt(c world.Cell) []world.Building
	ZoneAt(c world.Cell) *world.Zone
	SpawnDirect(t *thing.Thing, c world.Cell) bool
	PlaceNear(t *thing.Thing, c world.Cell) bool
	Destroy(t *thing.Thing)
	TemperatureAt(c world.Cell) float64
	RotRateAtTemperature(temperature float64) float64
}

// BuildingRegistry tracks the buildings on a map. It is implemented by
// world.Map.
type BuildingRegistry interface {
	AddBuilding(b world.Building) error
	RemoveBuilding(b world.Building)
}

// PowerTrader connects the device to a power net. It is implemented by
// world.PowerComp.
type PowerTrader interface {
	PowerOn() bool
	SetPowerOutput(w float64)
}

// TickTeller reports the host tick counters. It is implemented by
// sim.SerialEngine.
type TickTeller interface {
	TicksGame() uint64
	TicksAbs() uint64
}

// Notifier shows messages to the player. It is implemented by
// world.Feedback.
type Notifier interface {
	Message(text string, sound world.MessageSound)
}

// SoundPlayer plays one-shot sounds. It is implemented by world.Feedback.
type SoundPlayer interface {
	PlayOneShot(sound string, at world.Cell)
}
