package massstorage

import (
	"fmt"
	"math"

	"github.com/sarchlab/massstorage/thing"
	"github.com/sarchlab/massstorage/world"
)

// rotMiddleware advances the rot progress of rottable contents on rot
// interval ticks and discards the contents once they spoiled.
type rotMiddleware struct{ *Comp }

func (m *rotMiddleware) Tick() bool {
	s := &m.State

	if !m.Power.PowerOn() || !s.Holds() {
		return false
	}

	if !m.Spec.RotInterval.Due(m.Clock.TicksAbs()) {
		return false
	}

	def := s.StoredDef
	if !def.IsRottable() {
		s.RotProgress = 0
		return false
	}

	rate := m.World.RotRateAtTemperature(m.World.TemperatureAt(m.position))
	s.RotProgress += math.RoundToEven(rate * float64(m.Spec.RotInterval))

	if s.RotProgress >= def.Rottable.TicksToRotStart {
		m.spoil()
	}

	return true
}

func (m *rotMiddleware) spoil() {
	s := &m.State
	def := s.StoredDef
	count := s.Count.Get()

	m.Notifier.Message(
		fmt.Sprintf("%s rotted away in storage.", thing.CapitalizeFirst(def.Label)),
		world.MessageSilent,
	)

	s.StoredDef = nil
	s.Count.Set(0)
	s.RotProgress = m.Spec.SpoiledRotProgress

	m.invokeDeviceHook(HookPosContentsSpoiled, def, count)
}
