package sim

import (
	"log"
)

// Interval is the number of game ticks between two runs of a periodic job.
type Interval uint64

// Calendar lengths, in game ticks.
const (
	TicksPerHour    Interval = 2500
	TicksPerDay     Interval = 60000
	TicksPerQuadrum Interval = 900000
	TicksPerYear    Interval = 3600000
)

// Due returns true if a periodic job with this interval should run at the
// given tick.
func (i Interval) Due(tick uint64) bool {
	if i == 0 {
		log.Panic("interval cannot be 0")
	}

	return tick%uint64(i) == 0
}

// NextDue returns the first tick strictly after the given tick at which a job
// with this interval runs.
//
//	               Input
//	               [          )
//	    |----------|----------|----------|----->
//	                          |
//	                          Output
func (i Interval) NextDue(tick uint64) uint64 {
	if i == 0 {
		log.Panic("interval cannot be 0")
	}

	return (tick/uint64(i) + 1) * uint64(i)
}

// RunsIn returns how many times a job with this interval runs in the ticks
// [from, from+n).
func (i Interval) RunsIn(from, n uint64) uint64 {
	if i == 0 {
		log.Panic("interval cannot be 0")
	}

	if n == 0 {
		return 0
	}

	end := from + n - 1
	runs := end/uint64(i) + 1

	if from == 0 {
		return runs
	}

	return runs - ((from-1)/uint64(i) + 1)
}
