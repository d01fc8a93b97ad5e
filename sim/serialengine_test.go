package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SerialEngine", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *SerialEngine
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewSerialEngine()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should call the tickers in registration order", func() {
		t1 := NewMockTicker(mockCtrl)
		t2 := NewMockTicker(mockCtrl)
		engine.RegisterTicker(t1)
		engine.RegisterTicker(t2)

		first := t1.EXPECT().Tick().Return(true)
		second := t2.EXPECT().Tick().Return(false).After(first)
		third := t1.EXPECT().Tick().Return(true).After(second)
		t2.EXPECT().Tick().Return(false).After(third)

		Expect(engine.Run(2)).To(Succeed())
		Expect(engine.TicksGame()).To(Equal(uint64(2)))
	})

	It("should report the absolute ticks with the start offset", func() {
		engine.WithStartAbsTick(1000)

		Expect(engine.Run(5)).To(Succeed())

		Expect(engine.TicksGame()).To(Equal(uint64(5)))
		Expect(engine.TicksAbs()).To(Equal(uint64(1005)))
	})

	It("should invoke hooks before and after each tick", func() {
		hook := NewMockHook(mockCtrl)
		ticker := NewMockTicker(mockCtrl)
		engine.AcceptHook(hook)
		engine.RegisterTicker(ticker)

		before := hook.EXPECT().Func(gomock.Any()).Do(func(ctx HookCtx) {
			Expect(ctx.Pos).To(Equal(HookPosBeforeTick))
			Expect(ctx.Item).To(Equal(uint64(0)))
		})
		tick := ticker.EXPECT().Tick().Return(true).After(before)
		hook.EXPECT().Func(gomock.Any()).Do(func(ctx HookCtx) {
			Expect(ctx.Pos).To(Equal(HookPosAfterTick))
			Expect(ctx.Item).To(Equal(uint64(0)))
		}).After(tick)

		Expect(engine.Run(1)).To(Succeed())
	})

	It("should call simulation end handlers", func() {
		handler := NewMockSimulationEndHandler(mockCtrl)
		engine.RegisterSimulationEndHandler(handler)

		Expect(engine.Run(3)).To(Succeed())

		handler.EXPECT().Handle(uint64(3))
		engine.Finished()
	})

	It("should not tick while paused", func() {
		ticker := NewMockTicker(mockCtrl)
		engine.RegisterTicker(ticker)
		ticker.EXPECT().Tick().Return(true).Times(4)

		engine.Pause()
		done := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			Expect(engine.Run(4)).To(Succeed())
			close(done)
		}()

		Consistently(done).ShouldNot(BeClosed())
		Expect(engine.TicksGame()).To(Equal(uint64(0)))

		engine.Continue()
		Eventually(done).Should(BeClosed())
		Expect(engine.TicksGame()).To(Equal(uint64(4)))
	})
})
