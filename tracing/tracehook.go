package tracing

import (
	"fmt"
	"reflect"

	"github.com/sarchlab/massstorage/sim"
)

// NamedHookable is a hookable object with a name.
type NamedHookable interface {
	sim.Named
	sim.Hookable
}

// CollectTrace lets the tracer collect the events of a domain. Events are
// stamped with the game tick reported by clock.
func CollectTrace(domain NamedHookable, clock sim.TickTeller, tracer Tracer) {
	for _, hook := range domain.Hooks() {
		hook, ok := hook.(*traceHook)
		if ok && hook.t == tracer {
			panic(fmt.Sprintf(
				"domain %s already has tracer %s",
				domain.Name(), reflect.TypeOf(tracer)))
		}
	}

	domain.AcceptHook(&traceHook{t: tracer, clock: clock})
}

// A traceHook is a hook that forwards device events to a tracer.
type traceHook struct {
	t     Tracer
	clock sim.TickTeller
}

// Func records the event when the hook is triggered.
func (h *traceHook) Func(ctx sim.HookCtx) {
	e, ok := EventFromHook(ctx, h.clock.TicksGame())
	if !ok {
		return
	}

	h.t.RecordEvent(e)
}
