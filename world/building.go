package world

// A Building is anything that occupies cells on the map and is not an item.
type Building interface {
	Name() string
	Position() Cell
	OccupiedCells() []Cell

	// IsColonist returns true if the building belongs to the player's
	// colony.
	IsColonist() bool
}
