package massstorage

import (
	"log"

	"github.com/sarchlab/massstorage/thing"
)

// PostMake creates the storage settings of a freshly made device. The
// settings start from the default allowed kinds and are bounded by the fixed
// allowed kinds.
func (c *Comp) PostMake() {
	c.State.Settings = thing.NewStorageSettings()

	if len(c.Spec.FixedAllowed) > 0 {
		fixed := thing.NewStorageSettings()
		fixed.Filter.SetAllowAll(c.mustResolve(c.Spec.FixedAllowed))
		c.State.Settings.Parent = fixed
	}

	if len(c.Spec.DefaultAllowed) > 0 {
		defaults := thing.NewStorageSettings()
		defaults.Filter.SetAllowAll(c.mustResolve(c.Spec.DefaultAllowed))
		c.State.Settings.CopyFrom(defaults)
	}
}

func (c *Comp) mustResolve(names []string) []*thing.Def {
	if c.Catalog == nil {
		log.Panicf("device %s needs a catalog to resolve %v", c.Name(), names)
	}

	defs := make([]*thing.Def, 0, len(names))
	for _, n := range names {
		defs = append(defs, c.Catalog.MustNamed(n))
	}

	return defs
}

// SpawnSetup puts the device on the map.
func (c *Comp) SpawnSetup(registry BuildingRegistry) error {
	if err := registry.AddBuilding(c); err != nil {
		return err
	}

	c.spawned = true

	return nil
}

// DeSpawn ejects the contents of the device and removes it from the map. A
// despawned device no longer draws power.
func (c *Comp) DeSpawn(registry BuildingRegistry) {
	c.DropAll(false)
	registry.RemoveBuilding(c)
	c.Power.SetPowerOutput(0)
	c.spawned = false
}
