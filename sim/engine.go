package sim

// A SimulationEndHandler is a handler that is called after the simulation ends.
type SimulationEndHandler interface {
	Handle(ticksGame uint64)
}

// An Engine is the host tick scheduler. It advances the game one tick at a
// time and calls every registered Ticker synchronously, one after another.
type Engine interface {
	Hookable
	TickTeller

	// RegisterTicker adds a ticker to be called on every game tick. Tickers
	// are called in the order they are registered.
	RegisterTicker(t Ticker)

	// Run advances the game by the given number of ticks.
	Run(ticks uint64) error

	// Pause will pause the simulation until continue is called.
	Pause()

	// Continue will continue the paused simulation
	Continue()

	// RegisterSimulationEndHandler registers a handler that perform some
	// actions after the simulation is finished.
	RegisterSimulationEndHandler(handler SimulationEndHandler)

	// Finished invokes all the registered SimulationEndHandler
	Finished()
}
