package sim

import (
	"log"
	"sync"
)

// A SerialEngine is an Engine that runs the tickers of a tick one after
// another, on the calling goroutine.
type SerialEngine struct {
	*HookableBase

	tickLock  sync.RWMutex
	ticksGame uint64
	startAbs  uint64

	tickers []Ticker

	isPaused     bool
	isPausedLock sync.Mutex
	pauseLock    sync.Mutex

	singleRunLock sync.Mutex

	simulationEndHandlers []SimulationEndHandler
}

// NewSerialEngine creates a SerialEngine
func NewSerialEngine() *SerialEngine {
	e := new(SerialEngine)
	e.HookableBase = NewHookableBase()

	return e
}

// WithStartAbsTick sets the absolute tick at which the game starts. It must be
// called before the first tick.
func (e *SerialEngine) WithStartAbsTick(abs uint64) *SerialEngine {
	if e.TicksGame() != 0 {
		log.Panic("cannot change the start tick of a running game")
	}

	e.startAbs = abs

	return e
}

// RegisterTicker adds a ticker that is called every tick.
func (e *SerialEngine) RegisterTicker(t Ticker) {
	e.tickers = append(e.tickers, t)
}

// TicksGame returns the number of the tick being processed, or the next tick
// to process when the engine is idle.
func (e *SerialEngine) TicksGame() uint64 {
	e.tickLock.RLock()
	t := e.ticksGame
	e.tickLock.RUnlock()

	return t
}

// TicksAbs returns the absolute tick number.
func (e *SerialEngine) TicksAbs() uint64 {
	return e.startAbs + e.TicksGame()
}

func (e *SerialEngine) advance() {
	e.tickLock.Lock()
	e.ticksGame++
	e.tickLock.Unlock()
}

// Run processes the given number of ticks.
func (e *SerialEngine) Run(ticks uint64) error {
	e.singleRunLock.Lock()
	defer e.singleRunLock.Unlock()

	for i := uint64(0); i < ticks; i++ {
		e.pauseLock.Lock()
		e.step()
		e.pauseLock.Unlock()
	}

	return nil
}

func (e *SerialEngine) step() {
	now := e.TicksGame()

	hookCtx := HookCtx{
		Domain: e,
		Pos:    HookPosBeforeTick,
		Item:   now,
	}
	e.InvokeHook(hookCtx)

	for _, t := range e.tickers {
		t.Tick()
	}

	hookCtx.Pos = HookPosAfterTick
	e.InvokeHook(hookCtx)

	e.advance()
}

// Pause prevents the SerialEngine to run more ticks.
func (e *SerialEngine) Pause() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if e.isPaused {
		return
	}

	e.pauseLock.Lock()
	e.isPaused = true
}

// Continue allows the SerialEngine to run more ticks.
func (e *SerialEngine) Continue() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if !e.isPaused {
		return
	}

	e.pauseLock.Unlock()
	e.isPaused = false
}

// RegisterSimulationEndHandler registers a handler to be called when the
// simulation finishes.
func (e *SerialEngine) RegisterSimulationEndHandler(
	handler SimulationEndHandler,
) {
	e.simulationEndHandlers = append(e.simulationEndHandlers, handler)
}

// Finished should be called after the simulation ends. This function
// calls all the registered SimulationEndHandler.
func (e *SerialEngine) Finished() {
	now := e.TicksGame()
	for _, h := range e.simulationEndHandlers {
		h.Handle(now)
	}
}

var _ Engine = (*SerialEngine)(nil)
