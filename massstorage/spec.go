package massstorage

import (
	"fmt"

	"github.com/sarchlab/massstorage/sim"
	"github.com/sarchlab/massstorage/world"
)

// Spec holds immutable configuration values for a mass storage device.
type Spec struct {
	// Ticks between two storage cycles (invalidate, output, collect).
	CycleInterval sim.Interval `yaml:"cycle_interval"`

	// Absolute ticks between two rot updates.
	RotInterval sim.Interval `yaml:"rot_interval"`

	// Power
	BasePowerConsumption float64 `yaml:"base_power_consumption"`
	PowerGrowthBase      float64 `yaml:"power_growth_base"`

	// Rot progress left behind once the contents spoiled.
	SpoiledRotProgress float64 `yaml:"spoiled_rot_progress"`

	// Debug commands
	DefaultKind    string `yaml:"default_kind"`
	DebugAddAmount int    `yaml:"debug_add_amount"`

	Size world.Size `yaml:"size"`

	// Kinds allowed right after the device is made. FixedAllowed bounds what
	// the player can ever allow; empty means no bound.
	DefaultAllowed []string `yaml:"default_allowed"`
	FixedAllowed   []string `yaml:"fixed_allowed"`
}

// Validate checks that the spec describes a working device.
func (s Spec) Validate() error {
	if s.CycleInterval == 0 {
		return fmt.Errorf("cycle interval must be > 0")
	}

	if s.RotInterval == 0 {
		return fmt.Errorf("rot interval must be > 0")
	}

	if s.BasePowerConsumption < 0 {
		return fmt.Errorf("base power consumption must be >= 0")
	}

	if s.PowerGrowthBase < 1 {
		return fmt.Errorf("power growth base must be >= 1")
	}

	if s.DebugAddAmount < 0 {
		return fmt.Errorf("debug add amount must be >= 0")
	}

	if s.Size.X <= 0 || s.Size.Z <= 0 {
		return fmt.Errorf("size must be > 0")
	}

	return nil
}

// Defaults returns a Spec with the values of the stock device.
func Defaults() Spec {
	return Spec{
		CycleInterval:        40,
		RotInterval:          250,
		BasePowerConsumption: 100,
		PowerGrowthBase:      3,
		SpoiledRotProgress:   1,
		DefaultKind:          "Steel",
		DebugAddAmount:       1000000,
		Size:                 world.Size{X: 1, Z: 1},
	}
}
