package massstorage

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/massstorage/sim"
	"github.com/sarchlab/massstorage/thing"
)

var _ = Describe("Inspect", func() {
	var f *fixture

	BeforeEach(func() {
		f = newFixture(MakeBuilder())
	})

	It("should report an empty device", func() {
		Expect(f.device.InspectString()).To(Equal(
			"In internal storage: nothing (Item(s) stored externally: 0)"))
	})

	It("should report the internal and external contents", func() {
		f.hold(f.steel, 150)
		f.m.SpawnDirect(thing.MakeStack(f.steel, 20), devicePos)

		Expect(f.device.ItemsStoredExternally()).To(Equal(20))
		Expect(f.device.InspectString()).To(Equal(
			"In internal storage: 150x Steel (Item(s) stored externally: 20)"))
	})

	It("should report when rottable contents spoil", func() {
		f.hold(f.potatoes, 10)

		Expect(f.device.TicksUntilRot()).To(Equal(600000))
		Expect(f.device.InspectString()).To(Equal(
			"In internal storage: 10x Potatoes (Item(s) stored externally: 0)\n" +
				"Spoils in: 10 days"))
	})

	It("should report frozen contents as never spoiling", func() {
		f.m.SetBaseTemperature(-2)
		f.hold(f.potatoes, 10)

		Expect(f.device.InspectString()).To(HaveSuffix("Spoils in: never"))
	})

	It("should report the maximum count", func() {
		Expect(f.device.MaxCount()).To(Equal(2147483647))
	})

	DescribeTable("vague period",
		func(ticks uint64, text string) {
			Expect(VaguePeriod(ticks)).To(Equal(text))
		},
		Entry("minutes", uint64(100), "less than an hour"),
		Entry("an hour", uint64(sim.TicksPerHour), "1 hour"),
		Entry("hours", uint64(5*sim.TicksPerHour), "5 hours"),
		Entry("days", uint64(3*sim.TicksPerDay), "3 days"),
		Entry("quadrums", uint64(2*sim.TicksPerQuadrum), "2 quadrums"),
		Entry("years", uint64(4*sim.TicksPerYear), "4 years"),
		Entry("ages", uint64(11*sim.TicksPerYear), "over a decade"),
	)
})

var _ = Describe("Commands", func() {
	var f *fixture

	BeforeEach(func() {
		f = newFixture(MakeBuilder())
	})

	command := func(label string) Command {
		for _, cmd := range f.device.Commands(true) {
			if cmd.Label == label {
				return cmd
			}
		}

		Fail("no command " + label)

		return Command{}
	}

	It("should not offer debug commands outside dev mode", func() {
		Expect(f.device.Commands(false)).To(BeEmpty())
		Expect(f.device.Commands(true)).To(HaveLen(3))
	})

	It("should add a million of the default kind to an empty device", func() {
		command("DEBUG: Add 1 million of current item").Action()

		Expect(f.device.State.StoredDef).To(BeIdenticalTo(f.steel))
		Expect(f.device.State.Count.Get()).To(Equal(1000000))
	})

	It("should add a million of the held kind", func() {
		f.hold(f.wood, 5)

		command("DEBUG: Add 1 million of current item").Action()

		Expect(f.device.State.StoredDef).To(BeIdenticalTo(f.wood))
		Expect(f.device.State.Count.Get()).To(Equal(1000005))
	})

	It("should reset without dropping", func() {
		f.hold(f.steel, 500)

		command("DEBUG: Reset without dropping items").Action()

		Expect(f.device.State.StoredDef).To(BeNil())
		Expect(f.device.State.Count.Get()).To(Equal(0))
		Expect(f.m.AllItems()).To(BeEmpty())
	})

	It("should drop and disallow", func() {
		f.device.Settings().Filter.SetAllow(f.steel, true)
		f.hold(f.steel, 100)

		command("DEBUG: Drop all items").Action()

		Expect(totalOnMap(f.m, f.steel)).To(Equal(100))
		Expect(f.device.Settings().Filter.AllowsDef(f.steel)).To(BeFalse())
	})
})
