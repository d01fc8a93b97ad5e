package massstorage

import (
	"log"

	"github.com/sarchlab/massstorage/sim"
	"github.com/sarchlab/massstorage/thing"
	"github.com/sarchlab/massstorage/world"
)

// Builder constructs a Comp either from a Spec or per-field setters.
type Builder struct {
	spec     Spec
	world    World
	power    PowerTrader
	clock    TickTeller
	notifier Notifier
	sounds   SoundPlayer
	catalog  *thing.Catalog
	position world.Cell
	colonist bool
}

// MakeBuilder returns a new Builder with default Spec.
func MakeBuilder() Builder {
	return Builder{spec: Defaults(), colonist: true}
}

func (b Builder) WithSpec(spec Spec) Builder                 { b.spec = spec; return b }
func (b Builder) WithWorld(w World) Builder                  { b.world = w; return b }
func (b Builder) WithPower(p PowerTrader) Builder            { b.power = p; return b }
func (b Builder) WithClock(t TickTeller) Builder             { b.clock = t; return b }
func (b Builder) WithNotifier(n Notifier) Builder            { b.notifier = n; return b }
func (b Builder) WithSoundPlayer(s SoundPlayer) Builder      { b.sounds = s; return b }
func (b Builder) WithCatalog(c *thing.Catalog) Builder       { b.catalog = c; return b }
func (b Builder) WithPosition(c world.Cell) Builder          { b.position = c; return b }
func (b Builder) WithColonist(colonist bool) Builder         { b.colonist = colonist; return b }
func (b Builder) WithCycleInterval(i sim.Interval) Builder   { b.spec.CycleInterval = i; return b }
func (b Builder) WithRotInterval(i sim.Interval) Builder     { b.spec.RotInterval = i; return b }
func (b Builder) WithBasePowerConsumption(w float64) Builder { b.spec.BasePowerConsumption = w; return b }
func (b Builder) WithPowerGrowthBase(base float64) Builder   { b.spec.PowerGrowthBase = base; return b }
func (b Builder) WithSize(s world.Size) Builder              { b.spec.Size = s; return b }

// Build constructs the device. The device is made but not spawned.
func (b Builder) Build(name string) *Comp {
	if err := b.spec.Validate(); err != nil {
		log.Panicf("invalid spec for %s: %v", name, err)
	}

	b.mustHaveDependencies(name)

	c := &Comp{
		Spec:     b.spec,
		World:    b.world,
		Power:    b.power,
		Clock:    b.clock,
		Notifier: b.notifier,
		Sounds:   b.sounds,
		Catalog:  b.catalog,
		position: b.position,
		colonist: b.colonist,
	}
	c.ComponentBase = sim.NewComponentBase(name)

	// Middlewares
	c.AddMiddleware(&powerMiddleware{Comp: c})
	c.AddMiddleware(&storageMiddleware{Comp: c})
	c.AddMiddleware(&rotMiddleware{Comp: c})

	c.PostMake()

	return c
}

func (b Builder) mustHaveDependencies(name string) {
	switch {
	case b.world == nil:
		log.Panicf("device %s has no world", name)
	case b.power == nil:
		log.Panicf("device %s has no power trader", name)
	case b.clock == nil:
		log.Panicf("device %s has no clock", name)
	case b.notifier == nil:
		log.Panicf("device %s has no notifier", name)
	case b.sounds == nil:
		log.Panicf("device %s has no sound player", name)
	}
}
