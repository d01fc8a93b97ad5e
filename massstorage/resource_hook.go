package massstorage

import (
	"log"

	"github.com/sarchlab/massstorage/resourcecount"
	"github.com/sarchlab/massstorage/sim"
)

// ResourceCountHook adds the contents of the colony's devices to the resource
// tally of a resourcecount.Counter. Register it with Counter.AcceptHook.
type ResourceCountHook struct {
	sim.LogHookBase
}

// NewResourceCountHook creates a hook that reports merge failures to logger.
func NewResourceCountHook(logger *log.Logger) *ResourceCountHook {
	return &ResourceCountHook{LogHookBase: sim.MakeLogHookBase(logger)}
}

// Func merges the device contents after each recount.
func (h *ResourceCountHook) Func(ctx sim.HookCtx) {
	if ctx.Pos != resourcecount.HookPosAfterUpdate {
		return
	}

	counter, ok := ctx.Domain.(*resourcecount.Counter)
	if !ok {
		return
	}

	h.merge(counter)
}

// merge stops at the first failure. Amounts merged before the failure are
// kept.
func (h *ResourceCountHook) merge(counter *resourcecount.Counter) {
	amounts := counter.CountedAmounts()
	defer counter.SetCountedAmounts(amounts)

	defer func() {
		if r := recover(); r != nil {
			h.Printf("resource count merge failed: %v", r)
		}
	}()

	for _, b := range counter.Map().ColonistBuildings() {
		d, ok := b.(*Comp)
		if !ok {
			continue
		}

		if d == nil {
			h.Printf("resource count merge failed: nil device")
			return
		}

		def := d.State.StoredDef
		n := d.State.Count.Get()

		if def == nil || !def.CountAsResource || n <= 0 {
			continue
		}

		if _, tallied := amounts[def]; !tallied {
			h.Printf("resource count merge failed: %s in %s is not tallied",
				def.Name, d.Name())
			return
		}

		amounts[def] += n
	}
}

var _ sim.Hook = (*ResourceCountHook)(nil)
