package massstorage

import (
	"log"
)

// Command is an action offered to the player on a selected device.
type Command struct {
	Label       string
	Description string
	Action      func()
}

// Commands returns the actions available on the device. Debug actions are
// only offered in dev mode.
func (c *Comp) Commands(devMode bool) []Command {
	if !devMode {
		return nil
	}

	return []Command{
		{
			Label: "DEBUG: Drop all items",
			Description: "Drops all items stored in internal storage and " +
				"disallows the item in storage.",
			Action: func() { c.DropAll(true) },
		},
		{
			Label:       "DEBUG: Add 1 million of current item",
			Description: "If no item stored, adds " + c.Spec.DefaultKind + ".",
			Action:      c.debugAdd,
		},
		{
			Label:  "DEBUG: Reset without dropping items",
			Action: c.State.clear,
		},
	}
}

func (c *Comp) debugAdd() {
	s := &c.State

	if s.StoredDef == nil {
		if c.Catalog == nil {
			log.Printf("device %s: no catalog to look up %s", c.Name(), c.Spec.DefaultKind)
			return
		}

		def, ok := c.Catalog.Named(c.Spec.DefaultKind)
		if !ok {
			log.Printf("device %s: unknown kind %s", c.Name(), c.Spec.DefaultKind)
			return
		}

		s.StoredDef = def
	}

	s.Count.Add(int64(c.Spec.DebugAddAmount))
}
