package massstorage

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/massstorage/resourcecount"
	"github.com/sarchlab/massstorage/sim"
	"github.com/sarchlab/massstorage/thing"
	"github.com/sarchlab/massstorage/world"
)

type plainBuilding struct{ world.Cell }

func (b plainBuilding) Name() string                { return "Wall" }
func (b plainBuilding) Position() world.Cell        { return b.Cell }
func (b plainBuilding) OccupiedCells() []world.Cell { return []world.Cell{b.Cell} }
func (b plainBuilding) IsColonist() bool            { return true }

// unloadedMap fails while listing buildings.
type unloadedMap struct{ *world.Map }

func (m unloadedMap) ColonistBuildings() []world.Building {
	panic("map unloaded")
}

// danglingMap lists a device that no longer exists.
type danglingMap struct{ *world.Map }

func (m danglingMap) ColonistBuildings() []world.Building {
	return []world.Building{(*Comp)(nil)}
}

var _ = Describe("ResourceCountHook", func() {
	var (
		f       *fixture
		logs    *bytes.Buffer
		counter *resourcecount.Counter
	)

	addDevice := func(name string, at world.Cell, colonist bool) *Comp {
		d := MakeBuilder().
			WithWorld(f.m).
			WithPower(f.net.Connect()).
			WithClock(f.clock).
			WithNotifier(f.feedback).
			WithSoundPlayer(f.feedback).
			WithCatalog(f.catalog).
			WithPosition(at).
			WithColonist(colonist).
			Build(name)
		Expect(d.SpawnSetup(f.m)).To(Succeed())

		return d
	}

	BeforeEach(func() {
		f = newFixture(MakeBuilder())
		logs = new(bytes.Buffer)

		counter = resourcecount.NewCounter("Counter", f.m, f.catalog, f.clock)
		counter.AcceptHook(NewResourceCountHook(log.New(logs, "", 0)))
	})

	It("should add the device contents to the tally", func() {
		f.hold(f.steel, 50)
		other := addDevice("MSD2", world.Cell{X: 9, Z: 9}, true)
		other.State.StoredDef = f.steel
		other.State.Count.Set(30)

		counter.UpdateResourceCounts()

		Expect(counter.GetCount(f.steel)).To(Equal(80))
		Expect(logs.String()).To(BeEmpty())
	})

	It("should add to the items lying in stockpiles", func() {
		zone := world.NewStockpile("stockpile", world.Cell{X: 1, Z: 1})
		Expect(f.m.AddZone(zone)).To(Succeed())
		f.m.SpawnDirect(thing.MakeStack(f.steel, 7), world.Cell{X: 1, Z: 1})
		f.hold(f.steel, 50)

		counter.UpdateResourceCounts()

		Expect(counter.GetCount(f.steel)).To(Equal(57))
	})

	It("should skip devices of other factions and other buildings", func() {
		Expect(f.m.AddBuilding(plainBuilding{world.Cell{X: 2, Z: 2}})).To(Succeed())
		wild := addDevice("Ruin", world.Cell{X: 9, Z: 9}, false)
		wild.State.StoredDef = f.steel
		wild.State.Count.Set(30)

		counter.UpdateResourceCounts()

		Expect(counter.GetCount(f.steel)).To(Equal(0))
	})

	It("should skip kinds that are not resources", func() {
		f.hold(f.parka, 3)

		counter.UpdateResourceCounts()

		Expect(counter.GetCount(f.parka)).To(Equal(0))
		Expect(logs.String()).To(BeEmpty())
	})

	It("should stop at a kind missing from the tally and keep earlier merges", func() {
		f.hold(f.steel, 50)

		stray := &thing.Def{Name: "Stray", Label: "stray", StackLimit: 10, CountAsResource: true}
		other := addDevice("MSD2", world.Cell{X: 9, Z: 9}, true)
		other.State.StoredDef = stray
		other.State.Count.Set(5)

		third := addDevice("MSD3", world.Cell{X: 12, Z: 9}, true)
		third.State.StoredDef = f.wood
		third.State.Count.Set(9)

		counter.UpdateResourceCounts()

		Expect(counter.GetCount(f.steel)).To(Equal(50))
		Expect(counter.GetCount(f.wood)).To(Equal(0))
		Expect(logs.String()).To(ContainSubstring("Stray in MSD2 is not tallied"))
	})

	It("should recover from a failing map", func() {
		zone := world.NewStockpile("stockpile", world.Cell{X: 1, Z: 1})
		Expect(f.m.AddZone(zone)).To(Succeed())
		f.m.SpawnDirect(thing.MakeStack(f.steel, 7), world.Cell{X: 1, Z: 1})

		broken := resourcecount.NewCounter("Broken", unloadedMap{f.m}, f.catalog, f.clock)
		broken.AcceptHook(NewResourceCountHook(log.New(logs, "", 0)))

		Expect(broken.UpdateResourceCounts).NotTo(Panic())
		Expect(broken.GetCount(f.steel)).To(Equal(7))
		Expect(logs.String()).To(ContainSubstring("map unloaded"))
	})

	It("should report dangling devices", func() {
		broken := resourcecount.NewCounter("Broken", danglingMap{f.m}, f.catalog, f.clock)
		broken.AcceptHook(NewResourceCountHook(log.New(logs, "", 0)))

		Expect(broken.UpdateResourceCounts).NotTo(Panic())
		Expect(logs.String()).To(ContainSubstring("nil device"))
	})

	It("should ignore other hook positions", func() {
		f.hold(f.steel, 50)

		NewResourceCountHook(nil).Func(sim.HookCtx{Domain: counter, Pos: sim.HookPosAfterTick})

		Expect(counter.GetCount(f.steel)).To(Equal(0))
	})
})
