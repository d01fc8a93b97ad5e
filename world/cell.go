// Package world provides a reference host map: cells, items lying on them,
// stockpile zones, buildings, temperature, power and player-facing sinks.
package world

import (
	"fmt"
)

// Cell is a position on the map grid.
type Cell struct {
	X int `yaml:"x" json:"x"`
	Z int `yaml:"z" json:"z"`
}

// Add returns the cell offset by o.
func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Z: c.Z + o.Z}
}

// DistanceSquared returns the squared euclidean distance between two cells.
func (c Cell) DistanceSquared(o Cell) int {
	dx := c.X - o.X
	dz := c.Z - o.Z

	return dx*dx + dz*dz
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Z)
}

// Size is the footprint size of a building.
type Size struct {
	X int `yaml:"x" json:"x"`
	Z int `yaml:"z" json:"z"`
}

// CellRect is an inclusive rectangle of cells.
type CellRect struct {
	MinX, MinZ int
	MaxX, MaxZ int
}

// RectAt returns the rectangle occupied by a footprint of the given size
// whose anchor is center. Even sizes extend towards negative coordinates.
func RectAt(center Cell, size Size) CellRect {
	minX := center.X - (size.X-1)/2
	minZ := center.Z - (size.Z-1)/2

	return CellRect{
		MinX: minX,
		MinZ: minZ,
		MaxX: minX + size.X - 1,
		MaxZ: minZ + size.Z - 1,
	}
}

// Contains returns true if c lies inside the rectangle.
func (r CellRect) Contains(c Cell) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Z >= r.MinZ && c.Z <= r.MaxZ
}

// Cells lists the cells of the rectangle, row by row.
func (r CellRect) Cells() []Cell {
	if r.MaxX < r.MinX || r.MaxZ < r.MinZ {
		return nil
	}

	out := make([]Cell, 0, (r.MaxX-r.MinX+1)*(r.MaxZ-r.MinZ+1))
	for z := r.MinZ; z <= r.MaxZ; z++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			out = append(out, Cell{X: x, Z: z})
		}
	}

	return out
}
