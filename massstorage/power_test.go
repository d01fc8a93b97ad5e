package massstorage

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Power", func() {
	var (
		mockCtrl *gomock.Controller
		w        *MockWorld
		power    *MockPowerTrader
		clock    *MockTickTeller
		notifier *MockNotifier
		sounds   *MockSoundPlayer
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		w = NewMockWorld(mockCtrl)
		power = NewMockPowerTrader(mockCtrl)
		clock = NewMockTickTeller(mockCtrl)
		notifier = NewMockNotifier(mockCtrl)
		sounds = NewMockSoundPlayer(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	build := func(b Builder) *Comp {
		return b.
			WithWorld(w).
			WithPower(power).
			WithClock(clock).
			WithNotifier(notifier).
			WithSoundPlayer(sounds).
			Build("MSD")
	}

	It("should draw the base consumption when nearly empty", func() {
		c := build(MakeBuilder())
		c.State.Count.Set(1)

		power.EXPECT().SetPowerOutput(-100.0)
		power.EXPECT().PowerOn().Return(false).Times(2)

		c.Tick()
	})

	It("should grow the draw with the order of magnitude", func() {
		c := build(MakeBuilder())
		c.State.Count.Set(1000)

		power.EXPECT().SetPowerOutput(-2700.0)
		power.EXPECT().PowerOn().Return(false).Times(2)

		c.Tick()
	})

	It("should use the configured growth base", func() {
		c := build(MakeBuilder().
			WithPowerGrowthBase(2).
			WithBasePowerConsumption(50))
		c.State.Count.Set(1000)

		Expect(c.PowerOutput()).To(Equal(-400.0))
	})

	It("should update the draw on every tick", func() {
		c := build(MakeBuilder())
		c.State.Count.Set(10)

		power.EXPECT().SetPowerOutput(-300.0).Times(5)
		power.EXPECT().PowerOn().Return(false).Times(10)

		for i := 0; i < 5; i++ {
			c.Tick()
		}
	})

	DescribeTable("multiplier",
		func(count, multiplier int) {
			Expect(PowerMultiplier(count)).To(Equal(multiplier))
		},
		Entry("empty", 0, 0),
		Entry("one", 1, 0),
		Entry("single digit", 9, 0),
		Entry("ten", 10, 1),
		Entry("just below a thousand", 999, 2),
		Entry("a thousand", 1000, 3),
		Entry("a million", 1000000, 6),
		Entry("max", 2147483647, 9),
	)
})
