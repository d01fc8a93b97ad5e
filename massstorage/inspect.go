package massstorage

import (
	"fmt"
	"math"
	"strings"

	"github.com/sarchlab/massstorage/sim"
)

// TicksUntilRot returns the ticks left before the contents spoil at the
// current temperature. It returns math.MaxInt32 when the contents do not rot
// at this temperature and -1 when nothing rottable is held.
func (c *Comp) TicksUntilRot() int {
	def := c.State.StoredDef
	if !def.IsRottable() {
		return -1
	}

	temperature := math.RoundToEven(c.World.TemperatureAt(c.position))

	rate := c.World.RotRateAtTemperature(temperature)
	if rate <= 0 {
		return math.MaxInt32
	}

	left := def.Rottable.TicksToRotStart - c.State.RotProgress
	if left <= 0 {
		return 0
	}

	return int(math.RoundToEven(left / rate))
}

// InspectString describes the contents of the device.
func (c *Comp) InspectString() string {
	b := new(strings.Builder)

	held := "nothing"
	if def := c.State.StoredDef; def != nil {
		held = fmt.Sprintf("%dx %s", c.State.Count.Get(), def.LabelCap())
	}

	fmt.Fprintf(b, "In internal storage: %s (Item(s) stored externally: %d)",
		held, c.ItemsStoredExternally())

	if c.State.StoredDef.IsRottable() {
		ticks := c.TicksUntilRot()

		period := "never"
		if ticks != math.MaxInt32 {
			period = VaguePeriod(uint64(ticks))
		}

		fmt.Fprintf(b, "\nSpoils in: %s", period)
	}

	return b.String()
}

// VaguePeriod renders a tick count as a rough calendar period.
func VaguePeriod(ticks uint64) string {
	switch {
	case ticks > 10*uint64(sim.TicksPerYear):
		return "over a decade"
	case ticks >= uint64(sim.TicksPerYear):
		return plural(ticks, sim.TicksPerYear, "year")
	case ticks >= uint64(sim.TicksPerQuadrum):
		return plural(ticks, sim.TicksPerQuadrum, "quadrum")
	case ticks >= uint64(sim.TicksPerDay):
		return plural(ticks, sim.TicksPerDay, "day")
	case ticks >= uint64(sim.TicksPerHour):
		return plural(ticks, sim.TicksPerHour, "hour")
	default:
		return "less than an hour"
	}
}

func plural(ticks uint64, unit sim.Interval, name string) string {
	n := int(math.Round(float64(ticks) / float64(unit)))
	if n == 1 {
		return "1 " + name
	}

	return fmt.Sprintf("%d %ss", n, name)
}
