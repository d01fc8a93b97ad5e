package massstorage

import (
	"math"

	"github.com/sarchlab/massstorage/sim"
	"github.com/sarchlab/massstorage/thing"
	"github.com/sarchlab/massstorage/world"
)

// Comp is a mass storage device. It holds a single kind of item as a counted
// quantity, exchanges items with the cells around it and rots its contents.
type Comp struct {
	*sim.ComponentBase
	sim.MiddlewareHolder

	Spec  Spec
	State State

	// External dependencies
	World    World
	Power    PowerTrader
	Clock    TickTeller
	Notifier Notifier
	Sounds   SoundPlayer
	Catalog  *thing.Catalog

	position world.Cell
	colonist bool
	spawned  bool
}

// Tick delegates to the middleware pipeline.
func (c *Comp) Tick() bool { return c.MiddlewareHolder.Tick() }

// Position returns the anchor cell of the device.
func (c *Comp) Position() world.Cell {
	return c.position
}

// OccupiedCells returns the footprint of the device.
func (c *Comp) OccupiedCells() []world.Cell {
	return world.RectAt(c.position, c.Spec.Size).Cells()
}

// IsColonist returns true if the device belongs to the colony.
func (c *Comp) IsColonist() bool {
	return c.colonist
}

// Spawned returns true while the device is on a map.
func (c *Comp) Spawned() bool {
	return c.spawned
}

// MaxCount is the largest count the device reports.
func (c *Comp) MaxCount() int {
	return math.MaxInt32
}

// Settings returns the acceptance settings of the device.
func (c *Comp) Settings() *thing.StorageSettings {
	return c.State.Settings
}

// ItemsStoredExternally returns the number of items lying on the footprint of
// the device.
func (c *Comp) ItemsStoredExternally() int {
	n := 0

	for _, cell := range c.OccupiedCells() {
		for _, t := range c.itemsAt(cell) {
			n += t.StackCount
		}
	}

	return n
}

// itemsAt returns the things of the item category lying on a cell. Plants and
// other things sharing the cell are left out.
func (c *Comp) itemsAt(cell world.Cell) []*thing.Thing {
	var items []*thing.Thing

	for _, t := range c.World.ItemsAt(cell) {
		if t.Def.Category == thing.CategoryItem {
			items = append(items, t)
		}
	}

	return items
}

func (c *Comp) occupies(cell world.Cell) bool {
	return world.RectAt(c.position, c.Spec.Size).Contains(cell)
}

func (c *Comp) invokeDeviceHook(pos *sim.HookPos, def *thing.Def, count int) {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    pos,
		Item: DeviceEvent{
			Device:      c.Name(),
			Def:         def,
			Count:       count,
			RotProgress: c.State.RotProgress,
			At:          c.position,
		},
	})
}

var _ world.Building = (*Comp)(nil)
var _ sim.Component = (*Comp)(nil)
