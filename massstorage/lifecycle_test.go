package massstorage

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/massstorage/thing"
	"github.com/sarchlab/massstorage/world"
)

var _ = Describe("Lifecycle", func() {
	It("should start from the default settings", func() {
		spec := Defaults()
		spec.DefaultAllowed = []string{"Steel"}
		spec.FixedAllowed = []string{"Steel", "WoodLog"}

		f := newFixture(MakeBuilder().WithSpec(spec))
		settings := f.device.Settings()

		Expect(settings.Filter.AllowedDefNames()).To(Equal([]string{"Steel"}))
		Expect(settings.Parent).NotTo(BeNil())

		settings.Filter.SetAllow(f.potatoes, true)
		Expect(settings.AllowedToAccept(thing.MakeStack(f.potatoes, 1))).To(BeFalse())
		Expect(settings.AllowedToAccept(thing.MakeStack(f.steel, 1))).To(BeTrue())
	})

	It("should copy settings from another device", func() {
		a := newFixture(MakeBuilder())
		b := newFixture(MakeBuilder())

		a.device.Settings().Filter.SetAllow(a.steel, true)
		b.device.Settings().CopyFrom(a.device.Settings())

		Expect(b.device.Settings().Filter.AllowedDefNames()).To(Equal([]string{"Steel"}))
	})

	It("should panic on an invalid spec", func() {
		Expect(func() {
			newFixture(MakeBuilder().WithCycleInterval(0))
		}).To(Panic())
	})

	It("should panic without a world", func() {
		Expect(func() { MakeBuilder().Build("MSD") }).To(Panic())
	})

	It("should occupy its footprint", func() {
		f := newFixture(MakeBuilder().WithSize(world.Size{X: 3, Z: 1}))

		Expect(f.device.OccupiedCells()).To(Equal([]world.Cell{
			{X: 4, Z: 5}, {X: 5, Z: 5}, {X: 6, Z: 5},
		}))
		Expect(f.m.BuildingsAt(world.Cell{X: 6, Z: 5})).To(ConsistOf(f.device))
		Expect(f.device.Spawned()).To(BeTrue())
	})

	It("should output to every cell of its footprint", func() {
		f := newFixture(MakeBuilder().WithSize(world.Size{X: 3, Z: 1}))
		f.hold(f.steel, 200)

		f.tickAt(40, 40)

		total := 0
		for _, cell := range f.device.OccupiedCells() {
			total += len(f.m.ItemsAt(cell))
		}

		Expect(total).To(Equal(3))
		Expect(f.device.State.Count.Get()).To(Equal(0))
		Expect(totalOnMap(f.m, f.steel)).To(Equal(200))
	})

	It("should drop its contents when despawned", func() {
		f := newFixture(MakeBuilder())
		f.hold(f.steel, 100)

		f.device.DeSpawn(f.m)

		Expect(totalOnMap(f.m, f.steel)).To(Equal(100))
		Expect(f.device.State.StoredDef).To(BeNil())
		Expect(f.m.Buildings()).To(BeEmpty())
		Expect(f.device.Spawned()).To(BeFalse())
	})

	It("should stop drawing power when despawned", func() {
		f := newFixture(MakeBuilder())
		f.hold(f.steel, 5000)
		f.tickAt(1, 1)

		Expect(f.net.Demand()).To(BeNumerically(">", 0))

		f.device.DeSpawn(f.m)

		Expect(f.power.PowerOutput()).To(Equal(0.0))
		Expect(f.net.Demand()).To(Equal(0.0))
	})

	Context("with a mocked registry", func() {
		var (
			mockCtrl *gomock.Controller
			registry *MockBuildingRegistry
		)

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
			registry = NewMockBuildingRegistry(mockCtrl)
		})

		AfterEach(func() {
			mockCtrl.Finish()
		})

		It("should report registration failures", func() {
			f := newFixture(MakeBuilder())
			f.device.DeSpawn(f.m)

			registry.EXPECT().AddBuilding(f.device).Return(errors.New("occupied"))

			Expect(f.device.SpawnSetup(registry)).To(MatchError("occupied"))
			Expect(f.device.Spawned()).To(BeFalse())
		})

		It("should unregister after ejecting", func() {
			f := newFixture(MakeBuilder())
			f.hold(f.steel, 10)

			registry.EXPECT().RemoveBuilding(f.device).Do(func(world.Building) {
				Expect(totalOnMap(f.m, f.steel)).To(Equal(10))
			})

			f.device.DeSpawn(registry)
		})
	})
})
