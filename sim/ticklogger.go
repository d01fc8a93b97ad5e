package sim

import (
	"log"
)

// TickLogger is a hook that prints the tick counters every few ticks.
type TickLogger struct {
	LogHookBase

	every Interval
}

// NewTickLogger returns a TickLogger that writes into the logger once every
// given number of game ticks.
func NewTickLogger(logger *log.Logger, every Interval) *TickLogger {
	return &TickLogger{
		LogHookBase: MakeLogHookBase(logger),
		every:       every,
	}
}

// Func writes the tick information into the logger.
func (h *TickLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosAfterTick {
		return
	}

	tick, ok := ctx.Item.(uint64)
	if !ok || !h.every.Due(tick) {
		return
	}

	teller, ok := ctx.Domain.(TickTeller)
	if ok {
		h.Logger.Printf("tick %d (abs %d)", tick, teller.TicksAbs())
	} else {
		h.Logger.Printf("tick %d", tick)
	}
}
