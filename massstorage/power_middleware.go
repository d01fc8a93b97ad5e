package massstorage

import (
	"math"
)

// powerMiddleware updates the power draw of the device every tick. The draw
// grows geometrically with the order of magnitude of the held count.
type powerMiddleware struct{ *Comp }

func (m *powerMiddleware) Tick() bool {
	m.Power.SetPowerOutput(m.PowerOutput())
	return false
}

// PowerOutput returns the power output of the device for its current count.
// The value is negative as the device consumes power.
func (c *Comp) PowerOutput() float64 {
	multiplier := PowerMultiplier(c.State.Count.Get())

	return -(c.Spec.BasePowerConsumption * math.Pow(c.Spec.PowerGrowthBase, float64(multiplier)))
}

// PowerMultiplier returns floor(log10(count)) for counts above 1 and 0
// otherwise.
func PowerMultiplier(count int) int {
	if count <= 1 {
		return 0
	}

	m := 0
	for count >= 10 {
		count /= 10
		m++
	}

	return m
}
