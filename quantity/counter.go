// Package quantity provides an item counter that is safe against silent
// 32-bit wraparound.
//
// A Counter stores its value in a 64-bit accumulator and exposes it as an int
// bounded to [0, Max]. Large external additions, such as bulk collection or
// debug actions, never turn the exposed value negative; values beyond Max wrap
// predictably modulo Max+1.
package quantity

import (
	"math"
	"strconv"
)

// Max is the largest exposed quantity.
const Max = math.MaxInt32

const modulus = int64(Max) + 1

// Counter is an overflow-aware item counter. The zero value holds 0.
type Counter struct {
	acc int64
}

// New returns a counter holding v.
func New(v int64) Counter {
	c := Counter{}
	c.Set(v)

	return c
}

// Get returns the exposed value, always in [0, Max].
func (c Counter) Get() int {
	return int(c.acc % modulus)
}

// Set stores v into the accumulator. Negative values are clamped to 0.
func (c *Counter) Set(v int64) {
	if v < 0 {
		v = 0
	}

	c.acc = v
}

// Add adds delta to the accumulator, saturating at math.MaxInt64 and clamping
// at 0.
func (c *Counter) Add(delta int64) {
	switch {
	case delta > 0 && c.acc > math.MaxInt64-delta:
		c.Set(math.MaxInt64)
	default:
		c.Set(c.acc + delta)
	}
}

// Sub subtracts delta from the accumulator.
func (c *Counter) Sub(delta int64) {
	if delta == math.MinInt64 {
		c.Set(math.MaxInt64)
		return
	}

	c.Add(-delta)
}

// Raw returns the accumulator, which may exceed Max.
func (c Counter) Raw() int64 {
	return c.acc
}

// IsZero returns true if the exposed value is 0.
func (c Counter) IsZero() bool {
	return c.Get() == 0
}

func (c Counter) String() string {
	return strconv.Itoa(c.Get())
}
