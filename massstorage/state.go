package massstorage

import (
	"github.com/sarchlab/massstorage/quantity"
	"github.com/sarchlab/massstorage/thing"
)

// State is the mutable runtime data of the device.
type State struct {
	// StoredDef is the kind held, nil when the device is empty.
	StoredDef *thing.Def

	Count       quantity.Counter
	RotProgress float64

	Settings *thing.StorageSettings
}

// Holds returns true if the device holds a kind.
func (s *State) Holds() bool {
	return s.StoredDef != nil
}

func (s *State) clear() {
	s.StoredDef = nil
	s.Count.Set(0)
	s.RotProgress = 0
}
