package thing

import (
	"fmt"

	"github.com/sarchlab/massstorage/sim"
)

// A Thing is a physical item stack lying in the world.
type Thing struct {
	ID          string
	Def         *Def
	StackCount  int
	RotProgress float64
	Forbidden   bool

	quality    Quality
	hasQuality bool
	destroyed  bool
}

// MakeThing creates a stack of one item of the given kind. Items of kinds with
// quality start at normal quality.
func MakeThing(def *Def) *Thing {
	t := &Thing{
		ID:         def.Name + sim.GetIDGenerator().Generate(),
		Def:        def,
		StackCount: 1,
	}

	if def.HasQuality {
		t.SetQuality(QualityNormal)
	}

	return t
}

// MakeStack creates a stack of count items of the given kind.
func MakeStack(def *Def, count int) *Thing {
	t := MakeThing(def)
	t.StackCount = count

	return t
}

// TryGetQuality returns the quality of the item and whether it has one.
func (t *Thing) TryGetQuality() (Quality, bool) {
	return t.quality, t.hasQuality
}

// SetQuality assigns a quality to the item.
func (t *Thing) SetQuality(q Quality) {
	t.quality = q
	t.hasQuality = true
}

// SpaceLeft returns how many more items fit into this stack.
func (t *Thing) SpaceLeft() int {
	left := t.Def.StackLimit - t.StackCount
	if left < 0 {
		return 0
	}

	return left
}

// Destroyed returns true once the item has been destroyed.
func (t *Thing) Destroyed() bool {
	return t.destroyed
}

// MarkDestroyed flags the item as destroyed. It is called by the world that
// owns the item.
func (t *Thing) MarkDestroyed() {
	t.destroyed = true
}

func (t *Thing) String() string {
	return fmt.Sprintf("%s x%d", t.Def.Label, t.StackCount)
}
