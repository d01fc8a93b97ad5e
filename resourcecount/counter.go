// Package resourcecount keeps the colony-wide tally of resource items.
package resourcecount

import (
	"sort"
	"sync"

	"github.com/sarchlab/massstorage/sim"
	"github.com/sarchlab/massstorage/thing"
)

// UpdateInterval is the number of game ticks between two recounts.
const UpdateInterval sim.Interval = 204

// HookPosAfterUpdate triggers after the counter recounted the resources of its
// map. Hooks may adjust the tally through CountedAmounts and
// SetCountedAmounts. The item is the game tick of the update.
var HookPosAfterUpdate = &sim.HookPos{Name: "AfterResourceUpdate"}

// Counter tallies, per kind, the resource items stored on a map.
type Counter struct {
	*sim.ComponentBase

	lock    sync.RWMutex
	world   Map
	catalog *thing.Catalog
	clock   sim.TickTeller
	counted map[*thing.Def]int

	Interval sim.Interval
}

// NewCounter creates a counter for a map. The clock can be nil if the
// counter is only updated explicitly.
func NewCounter(
	name string,
	m Map,
	catalog *thing.Catalog,
	clock sim.TickTeller,
) *Counter {
	c := &Counter{
		ComponentBase: sim.NewComponentBase(name),
		world:         m,
		catalog:       catalog,
		clock:         clock,
		counted:       make(map[*thing.Def]int),
		Interval:      UpdateInterval,
	}

	return c
}

// Tick recounts the resources every Interval game ticks.
func (c *Counter) Tick() bool {
	if c.clock == nil || !c.Interval.Due(c.clock.TicksGame()) {
		return false
	}

	c.UpdateResourceCounts()

	return true
}

// UpdateResourceCounts recounts every resource kind from the items lying in
// stockpile zones and then triggers the AfterUpdate hooks.
func (c *Counter) UpdateResourceCounts() {
	counts := make(map[*thing.Def]int)
	for _, def := range c.catalog.ResourceDefs() {
		counts[def] = 0
	}

	for _, zone := range c.world.Zones() {
		for _, cell := range zone.Cells() {
			for _, t := range c.world.ItemsAt(cell) {
				if _, ok := counts[t.Def]; ok {
					counts[t.Def] += t.StackCount
				}
			}
		}
	}

	c.lock.Lock()
	c.counted = counts
	c.lock.Unlock()

	if c.NumHooks() == 0 {
		return
	}

	var now uint64
	if c.clock != nil {
		now = c.clock.TicksGame()
	}

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    HookPosAfterUpdate,
		Item:   now,
	})
}

// CountedAmounts returns a copy of the tally.
func (c *Counter) CountedAmounts() map[*thing.Def]int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	out := make(map[*thing.Def]int, len(c.counted))
	for def, n := range c.counted {
		out[def] = n
	}

	return out
}

// SetCountedAmounts replaces the tally.
func (c *Counter) SetCountedAmounts(amounts map[*thing.Def]int) {
	out := make(map[*thing.Def]int, len(amounts))
	for def, n := range amounts {
		out[def] = n
	}

	c.lock.Lock()
	c.counted = out
	c.lock.Unlock()
}

// GetCount returns the tallied amount of a kind.
func (c *Counter) GetCount(def *thing.Def) int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.counted[def]
}

// Map returns the map the counter tallies.
func (c *Counter) Map() Map {
	return c.world
}

// TallyEntry is one line of the tally.
type TallyEntry struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

// Entries returns the tally sorted by kind name.
func (c *Counter) Entries() []TallyEntry {
	amounts := c.CountedAmounts()

	out := make([]TallyEntry, 0, len(amounts))
	for def, n := range amounts {
		out = append(out, TallyEntry{Kind: def.Name, Count: n})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })

	return out
}

var _ sim.Component = (*Counter)(nil)
