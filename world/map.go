package world

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/sarchlab/massstorage/thing"
)

// DefaultPlaceRadius bounds the search of PlaceNear.
const DefaultPlaceRadius = 8

// Map is a rectangular grid holding items, buildings and zones.
type Map struct {
	lock sync.RWMutex

	width, height int
	logger        *log.Logger

	items     map[Cell][]*thing.Thing
	where     map[*thing.Thing]Cell
	buildings []Building
	occupied  map[Cell][]Building
	zones     []*Zone
	zoneAt    map[Cell]*Zone

	baseTemperature float64
	temperatures    map[Cell]float64

	PlaceRadius int
}

// NewMap creates an empty map. Events such as lost items are reported to
// logger; a nil logger disables reporting.
func NewMap(width, height int, logger *log.Logger) *Map {
	if width <= 0 || height <= 0 {
		log.Panicf("invalid map size %dx%d", width, height)
	}

	return &Map{
		width:           width,
		height:          height,
		logger:          logger,
		items:           make(map[Cell][]*thing.Thing),
		where:           make(map[*thing.Thing]Cell),
		occupied:        make(map[Cell][]Building),
		zoneAt:          make(map[Cell]*Zone),
		temperatures:    make(map[Cell]float64),
		baseTemperature: 21,
		PlaceRadius:     DefaultPlaceRadius,
	}
}

// Size returns the width and height of the map.
func (m *Map) Size() (int, int) {
	return m.width, m.height
}

// InBounds returns true if the cell is on the map.
func (m *Map) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.width && c.Z >= 0 && c.Z < m.height
}

// ItemsAt returns the items lying on a cell.
func (m *Map) ItemsAt(c Cell) []*thing.Thing {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return append([]*thing.Thing(nil), m.items[c]...)
}

// AllItems returns every item on the map, ordered by cell.
func (m *Map) AllItems() []*thing.Thing {
	m.lock.RLock()
	defer m.lock.RUnlock()

	cells := make([]Cell, 0, len(m.items))
	for c := range m.items {
		cells = append(cells, c)
	}

	sortCells(cells)

	var out []*thing.Thing
	for _, c := range cells {
		out = append(out, m.items[c]...)
	}

	return out
}

// PositionOf returns the cell an item lies on.
func (m *Map) PositionOf(t *thing.Thing) (Cell, bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	c, ok := m.where[t]

	return c, ok
}

// SpawnDirect puts an item on exactly the given cell.
func (m *Map) SpawnDirect(t *thing.Thing, c Cell) bool {
	if t == nil || t.Destroyed() || !m.InBounds(c) {
		return false
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	m.put(t, c)

	return true
}

// PlaceNear puts an item on or around the given cell. The item first merges
// into stacks of the same kind and then occupies the nearest cell without
// items. It returns false if some of the items could not be placed; those
// items are lost.
func (m *Map) PlaceNear(t *thing.Thing, c Cell) bool {
	if t == nil || t.Destroyed() {
		return false
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	for _, cell := range m.radialCells(c) {
		if m.mergeInto(t, cell) {
			return true
		}

		if len(m.items[cell]) == 0 {
			m.put(t, cell)
			return true
		}
	}

	if m.logger != nil {
		m.logger.Printf("could not place %s near %s, item lost", t, c)
	}

	t.MarkDestroyed()

	return false
}

func (m *Map) mergeInto(t *thing.Thing, c Cell) bool {
	for _, other := range m.items[c] {
		if other.Def != t.Def || other.SpaceLeft() == 0 {
			continue
		}

		n := min(other.SpaceLeft(), t.StackCount)
		other.StackCount += n
		t.StackCount -= n

		if t.StackCount == 0 {
			t.MarkDestroyed()
			return true
		}
	}

	return false
}

func (m *Map) put(t *thing.Thing, c Cell) {
	if old, ok := m.where[t]; ok {
		m.remove(t, old)
	}

	m.items[c] = append(m.items[c], t)
	m.where[t] = c
}

func (m *Map) remove(t *thing.Thing, c Cell) {
	list := m.items[c]
	for i, other := range list {
		if other == t {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}

	if len(list) == 0 {
		delete(m.items, c)
	} else {
		m.items[c] = list
	}

	delete(m.where, t)
}

func (m *Map) radialCells(center Cell) []Cell {
	r := m.PlaceRadius
	cells := make([]Cell, 0, (2*r+1)*(2*r+1))

	for z := center.Z - r; z <= center.Z+r; z++ {
		for x := center.X - r; x <= center.X+r; x++ {
			c := Cell{X: x, Z: z}
			if m.InBounds(c) && c.DistanceSquared(center) <= r*r {
				cells = append(cells, c)
			}
		}
	}

	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].DistanceSquared(center) < cells[j].DistanceSquared(center)
	})

	return cells
}

// Destroy removes an item from the map.
func (m *Map) Destroy(t *thing.Thing) {
	if t == nil {
		return
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	if c, ok := m.where[t]; ok {
		m.remove(t, c)
	}

	t.MarkDestroyed()
}

// AddBuilding registers a building on the cells it occupies.
func (m *Map) AddBuilding(b Building) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	for _, other := range m.buildings {
		if other.Name() == b.Name() {
			return fmt.Errorf("building %s already on the map", b.Name())
		}
	}

	for _, c := range b.OccupiedCells() {
		if !m.InBounds(c) {
			return fmt.Errorf("building %s out of bounds at %s", b.Name(), c)
		}
	}

	m.buildings = append(m.buildings, b)
	for _, c := range b.OccupiedCells() {
		m.occupied[c] = append(m.occupied[c], b)
	}

	return nil
}

// RemoveBuilding unregisters a building.
func (m *Map) RemoveBuilding(b Building) {
	m.lock.Lock()
	defer m.lock.Unlock()

	for i, other := range m.buildings {
		if other == b {
			m.buildings = append(m.buildings[:i], m.buildings[i+1:]...)
			break
		}
	}

	for _, c := range b.OccupiedCells() {
		list := m.occupied[c]
		for i, other := range list {
			if other == b {
				list = append(list[:i], list[i+1:]...)
				break
			}
		}

		if len(list) == 0 {
			delete(m.occupied, c)
		} else {
			m.occupied[c] = list
		}
	}
}

// BuildingsAt returns the buildings occupying a cell.
func (m *Map) BuildingsAt(c Cell) []Building {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return append([]Building(nil), m.occupied[c]...)
}

// Buildings returns every building, in the order they were added.
func (m *Map) Buildings() []Building {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return append([]Building(nil), m.buildings...)
}

// ColonistBuildings returns the buildings that belong to the colony.
func (m *Map) ColonistBuildings() []Building {
	m.lock.RLock()
	defer m.lock.RUnlock()

	var out []Building
	for _, b := range m.buildings {
		if b.IsColonist() {
			out = append(out, b)
		}
	}

	return out
}

// AddZone registers a stockpile zone. Zones may not overlap.
func (m *Map) AddZone(z *Zone) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	for _, c := range z.Cells() {
		if !m.InBounds(c) {
			return fmt.Errorf("zone %s out of bounds at %s", z.Name, c)
		}

		if other, ok := m.zoneAt[c]; ok {
			return fmt.Errorf("zone %s overlaps zone %s at %s", z.Name, other.Name, c)
		}
	}

	m.zones = append(m.zones, z)
	for _, c := range z.Cells() {
		m.zoneAt[c] = z
	}

	return nil
}

// ZoneAt returns the zone covering a cell, or nil.
func (m *Map) ZoneAt(c Cell) *Zone {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.zoneAt[c]
}

// Zones returns every zone on the map.
func (m *Map) Zones() []*Zone {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return append([]*Zone(nil), m.zones...)
}

// SetBaseTemperature sets the outdoor temperature in Celsius.
func (m *Map) SetBaseTemperature(t float64) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.baseTemperature = t
}

// SetTemperature overrides the temperature of a single cell.
func (m *Map) SetTemperature(c Cell, t float64) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.temperatures[c] = t
}

// TemperatureAt returns the temperature of a cell in Celsius.
func (m *Map) TemperatureAt(c Cell) float64 {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if t, ok := m.temperatures[c]; ok {
		return t
	}

	return m.baseTemperature
}

// RotRateAtTemperature returns how fast items rot at a temperature. Items
// freeze below 0°C and rot at full rate from 10°C.
func (m *Map) RotRateAtTemperature(t float64) float64 {
	return RotRateAtTemperature(t)
}

// RotRateAtTemperature is the rot rate curve shared by every map.
func RotRateAtTemperature(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t >= 10:
		return 1
	default:
		return t / 10
	}
}

func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Z != cells[j].Z {
			return cells[i].Z < cells[j].Z
		}

		return cells[i].X < cells[j].X
	})
}
