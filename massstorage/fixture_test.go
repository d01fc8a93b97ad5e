package massstorage

import (
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/massstorage/sim"
	"github.com/sarchlab/massstorage/thing"
	"github.com/sarchlab/massstorage/world"
)

type manualClock struct {
	game, abs uint64
}

func (c *manualClock) TicksGame() uint64 { return c.game }
func (c *manualClock) TicksAbs() uint64  { return c.abs }

func (c *manualClock) set(game, abs uint64) {
	c.game = game
	c.abs = abs
}

type recordingHook struct {
	ctxs []sim.HookCtx
}

func (h *recordingHook) Func(ctx sim.HookCtx) {
	h.ctxs = append(h.ctxs, ctx)
}

func (h *recordingHook) events(pos *sim.HookPos) []DeviceEvent {
	var out []DeviceEvent
	for _, ctx := range h.ctxs {
		if ctx.Pos == pos {
			out = append(out, ctx.Item.(DeviceEvent))
		}
	}

	return out
}

// fixture is a device standing at (5, 5) on a real map.
type fixture struct {
	m        *world.Map
	feedback *world.Feedback
	net      *world.PowerNet
	power    *world.PowerComp
	clock    *manualClock
	catalog  *thing.Catalog

	steel, wood, potatoes, parka *thing.Def

	device *Comp
}

var devicePos = world.Cell{X: 5, Z: 5}

func newCatalog() *thing.Catalog {
	catalog, err := thing.NewCatalog(
		&thing.Def{
			Name: "Steel", Label: "steel", StackLimit: 75,
			EverHaulable: true, CountAsResource: true,
			SoundDrop: "Standard_Drop",
		},
		&thing.Def{
			Name: "WoodLog", Label: "wood", StackLimit: 75,
			EverHaulable: true, CountAsResource: true,
			SoundDrop: "Wood_Drop",
		},
		&thing.Def{
			Name: "RawPotatoes", Label: "potatoes", StackLimit: 75,
			EverHaulable: true, CountAsResource: true,
			Rottable: &thing.RottableProps{TicksToRotStart: 600000},
		},
		&thing.Def{
			Name: "Apparel_Parka", Label: "parka", StackLimit: 1,
			EverHaulable: true, MadeFromStuff: true, HasQuality: true,
		},
	)
	Expect(err).NotTo(HaveOccurred())

	return catalog
}

func newFixture(builder Builder) *fixture {
	f := &fixture{
		m:        world.NewMap(20, 20, log.New(GinkgoWriter, "", 0)),
		feedback: world.NewFeedback(log.New(GinkgoWriter, "", 0)),
		net:      world.NewPowerNet(1e12),
		clock:    &manualClock{},
		catalog:  newCatalog(),
	}

	f.power = f.net.Connect()
	f.steel = f.catalog.MustNamed("Steel")
	f.wood = f.catalog.MustNamed("WoodLog")
	f.potatoes = f.catalog.MustNamed("RawPotatoes")
	f.parka = f.catalog.MustNamed("Apparel_Parka")

	f.device = builder.
		WithWorld(f.m).
		WithPower(f.power).
		WithClock(f.clock).
		WithNotifier(f.feedback).
		WithSoundPlayer(f.feedback).
		WithCatalog(f.catalog).
		WithPosition(devicePos).
		Build("MSD")

	Expect(f.device.SpawnSetup(f.m)).To(Succeed())

	return f
}

func (f *fixture) hold(def *thing.Def, n int64) {
	f.device.State.StoredDef = def
	f.device.State.Count.Set(n)
}

func (f *fixture) tickAt(game, abs uint64) {
	f.clock.set(game, abs)
	f.device.Tick()
}

func stackCounts(items []*thing.Thing) []int {
	out := make([]int, 0, len(items))
	for _, t := range items {
		out = append(out, t.StackCount)
	}

	return out
}

func totalOnMap(m *world.Map, def *thing.Def) int {
	n := 0
	for _, t := range m.AllItems() {
		if t.Def == def {
			n += t.StackCount
		}
	}

	return n
}
