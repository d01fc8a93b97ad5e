package massstorage

import (
	"github.com/sarchlab/massstorage/thing"
	"github.com/sarchlab/massstorage/world"
)

// storageMiddleware runs the storage cycle: invalidate, spawn output and
// collect input. It only runs while powered and on cycle ticks.
type storageMiddleware struct{ *Comp }

func (m *storageMiddleware) Tick() bool {
	if !m.Power.PowerOn() {
		return false
	}

	if !m.Spec.CycleInterval.Due(m.Clock.TicksGame()) {
		return false
	}

	progress := false
	progress = m.invalidate() || progress
	progress = m.spawnOutput() || progress
	progress = m.collectInput() || progress

	return progress
}

func (m *storageMiddleware) invalidate() bool {
	s := &m.State
	if s.StoredDef == nil || s.Count.Get() > 0 {
		return false
	}

	for _, cell := range m.OccupiedCells() {
		if len(m.itemsAt(cell)) > 0 {
			return false
		}
	}

	s.clear()

	return true
}

func (m *storageMiddleware) spawnOutput() bool {
	s := &m.State
	progress := false

	for _, cell := range m.OccupiedCells() {
		count := s.Count.Get()
		if count <= 0 {
			continue
		}

		items := m.itemsAt(cell)

		if stack := findStack(items, s.StoredDef); stack != nil {
			n := min(stack.SpaceLeft(), count)
			if n > 0 {
				stack.StackCount += n
				s.Count.Sub(int64(n))
				progress = true
			}

			continue
		}

		if len(items) == 0 && s.StoredDef != nil {
			progress = m.spawnStack(cell, count) || progress
		}
	}

	return progress
}

func (m *storageMiddleware) spawnStack(cell world.Cell, count int) bool {
	s := &m.State
	def := s.StoredDef
	n := min(stackLimit(def), count)

	t := makeStack(def, n, s.RotProgress)

	if !m.World.SpawnDirect(t, cell) {
		return false
	}

	s.Count.Sub(int64(n))
	m.invokeDeviceHook(HookPosOutputSpawned, def, n)

	return true
}

func (m *storageMiddleware) collectInput() bool {
	zone := m.World.ZoneAt(m.position)
	if zone == nil {
		return false
	}

	progress := false

	for _, cell := range zone.Cells() {
		if m.occupies(cell) {
			continue
		}

		for _, t := range m.World.ItemsAt(cell) {
			if !Storable(t) || !m.State.Settings.AllowedToAccept(t) {
				continue
			}

			if m.heldByDeviceAt(cell, t.Def) {
				continue
			}

			progress = m.Accept(t) || progress
		}
	}

	return progress
}

func (m *storageMiddleware) heldByDeviceAt(cell world.Cell, def *thing.Def) bool {
	for _, b := range m.World.BuildingsAt(cell) {
		other, ok := b.(*Comp)
		if !ok || other == m.Comp {
			continue
		}

		if other.State.StoredDef == def {
			return true
		}
	}

	return false
}

// Storable returns true if the device can absorb the item at all: a plain,
// haulable, unforbidden item without quality that is not made from stuff.
func Storable(t *thing.Thing) bool {
	if t == nil || t.Destroyed() {
		return false
	}

	d := t.Def
	if d.Category != thing.CategoryItem || d.IsCorpse || !d.EverHaulable || d.MadeFromStuff {
		return false
	}

	if _, ok := t.TryGetQuality(); ok {
		return false
	}

	return !t.Forbidden
}

func findStack(items []*thing.Thing, def *thing.Def) *thing.Thing {
	if def == nil {
		return nil
	}

	for _, t := range items {
		if t.Def == def {
			return t
		}
	}

	return nil
}

func makeStack(def *thing.Def, n int, rotProgress float64) *thing.Thing {
	t := thing.MakeStack(def, n)
	t.RotProgress = rotProgress

	return t
}

func stackLimit(def *thing.Def) int {
	if def.StackLimit < 1 {
		return 1
	}

	return def.StackLimit
}
