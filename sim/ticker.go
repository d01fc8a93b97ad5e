package sim

// A Ticker is an object that updates states with ticks.
type Ticker interface {
	Tick() bool
}

// TickTeller reports the tick counters of the host world.
//
// TicksGame counts the ticks since the current game started. TicksAbs counts
// the ticks since the absolute start of the calendar, which is TicksGame plus
// the offset at which the game started.
type TickTeller interface {
	TicksGame() uint64
	TicksAbs() uint64
}
