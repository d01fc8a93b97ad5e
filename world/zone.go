package world

import (
	"github.com/sarchlab/massstorage/thing"
)

// A Zone is a stockpile area. Items lying in it count as stored.
type Zone struct {
	Name     string
	Settings *thing.StorageSettings

	cells map[Cell]bool
}

// NewStockpile creates a stockpile zone covering the given cells.
func NewStockpile(name string, cells ...Cell) *Zone {
	z := &Zone{
		Name:     name,
		Settings: thing.NewStorageSettings(),
		cells:    make(map[Cell]bool, len(cells)),
	}

	for _, c := range cells {
		z.cells[c] = true
	}

	return z
}

// Contains returns true if the cell belongs to the zone.
func (z *Zone) Contains(c Cell) bool {
	return z.cells[c]
}

// Cells returns the cells of the zone in a stable order.
func (z *Zone) Cells() []Cell {
	out := make([]Cell, 0, len(z.cells))
	for c := range z.cells {
		out = append(out, c)
	}

	sortCells(out)

	return out
}
