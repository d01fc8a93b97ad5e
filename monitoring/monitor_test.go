package monitoring

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"time"

	"github.com/sarchlab/massstorage/resourcecount"
	"github.com/sarchlab/massstorage/sim"
	"github.com/sarchlab/massstorage/tracing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type sampleComponent struct {
	*sim.ComponentBase

	ticks int
}

func (c *sampleComponent) Tick() bool {
	c.ticks++
	return true
}

func (c *sampleComponent) InspectString() string {
	return "ticked " + strconv.Itoa(c.ticks)
}

func newSampleComponent(name string) *sampleComponent {
	return &sampleComponent{ComponentBase: sim.NewComponentBase(name)}
}

type plainComponent struct {
	*sim.ComponentBase
}

func (c *plainComponent) Tick() bool { return false }

type fixedTally []resourcecount.TallyEntry

func (t fixedTally) Entries() []resourcecount.TallyEntry { return t }

type fixedSummaries []tracing.Summary

func (s fixedSummaries) Summaries() []tracing.Summary { return s }

var _ = Describe("Monitor", func() {
	var (
		engine *sim.SerialEngine
		comp   *sampleComponent
		m      *Monitor
		server *httptest.Server
	)

	get := func(path string) (int, []byte) {
		rsp, err := http.Get(server.URL + path)
		Expect(err).NotTo(HaveOccurred())
		defer rsp.Body.Close()

		body, err := io.ReadAll(rsp.Body)
		Expect(err).NotTo(HaveOccurred())

		return rsp.StatusCode, body
	}

	BeforeEach(func() {
		engine = sim.NewSerialEngine().WithStartAbsTick(1000)
		comp = newSampleComponent("Device")
		engine.RegisterTicker(comp)

		m = NewMonitor()
		m.RegisterEngine(engine)
		m.RegisterComponent(comp)
		m.RegisterComponent(&plainComponent{
			ComponentBase: sim.NewComponentBase("Plain"),
		})

		server = httptest.NewServer(m.Router())
	})

	AfterEach(func() {
		server.Close()
	})

	It("should list components", func() {
		code, body := get("/api/list_components")

		Expect(code).To(Equal(http.StatusOK))

		var names []string
		Expect(json.Unmarshal(body, &names)).To(Succeed())
		Expect(names).To(Equal([]string{"Device", "Plain"}))
	})

	It("should report the tick counters", func() {
		Expect(engine.Run(5)).To(Succeed())

		code, body := get("/api/now")

		Expect(code).To(Equal(http.StatusOK))

		rsp := nowRsp{}
		Expect(json.Unmarshal(body, &rsp)).To(Succeed())
		Expect(rsp.TicksGame).To(Equal(uint64(5)))
		Expect(rsp.TicksAbs).To(Equal(uint64(1005)))
	})

	It("should run the engine in the background", func() {
		code, _ := get("/api/run?ticks=3")

		Expect(code).To(Equal(http.StatusAccepted))
		Eventually(engine.TicksGame, time.Second).Should(Equal(uint64(3)))
		Expect(comp.ticks).To(Equal(3))
	})

	It("should reject a bad tick count", func() {
		code, _ := get("/api/run?ticks=abc")

		Expect(code).To(Equal(http.StatusBadRequest))
	})

	It("should pause and continue the engine", func() {
		code, _ := get("/api/pause")
		Expect(code).To(Equal(http.StatusOK))

		get("/api/run?ticks=2")
		Consistently(engine.TicksGame, 100*time.Millisecond).
			Should(Equal(uint64(0)))

		code, _ = get("/api/continue")
		Expect(code).To(Equal(http.StatusOK))
		Eventually(engine.TicksGame, time.Second).Should(Equal(uint64(2)))
	})

	It("should return 404 for unknown components", func() {
		code, body := get("/api/component/Nothing")

		Expect(code).To(Equal(http.StatusNotFound))
		Expect(string(body)).To(Equal("Component not found"))
	})

	It("should inspect components", func() {
		Expect(engine.Run(2)).To(Succeed())

		code, body := get("/api/inspect/Device")

		Expect(code).To(Equal(http.StatusOK))
		Expect(string(body)).To(Equal("ticked 2"))
	})

	It("should refuse to inspect components without a description", func() {
		code, _ := get("/api/inspect/Plain")

		Expect(code).To(Equal(http.StatusMethodNotAllowed))
	})

	It("should report an empty tally when none is registered", func() {
		code, body := get("/api/tally")

		Expect(code).To(Equal(http.StatusOK))
		Expect(string(body)).To(Equal("[]"))
	})

	It("should report the tally", func() {
		m.RegisterTally(fixedTally{{Kind: "Steel", Count: 75}})

		_, body := get("/api/tally")

		var entries []resourcecount.TallyEntry
		Expect(json.Unmarshal(body, &entries)).To(Succeed())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Kind).To(Equal("Steel"))
		Expect(entries[0].Count).To(Equal(75))
	})

	It("should report event summaries", func() {
		m.RegisterEventSummarizer(fixedSummaries{
			{What: tracing.WhatAccept, Kind: "Steel", Items: 40},
		})

		_, body := get("/api/events")

		var summaries []tracing.Summary
		Expect(json.Unmarshal(body, &summaries)).To(Succeed())
		Expect(summaries).To(ConsistOf(tracing.Summary{
			What: tracing.WhatAccept, Kind: "Steel", Items: 40,
		}))
	})

	It("should list progress bars", func() {
		bar := m.CreateProgressBar("Run", 10)
		hook := NewProgressHook()
		hook.Track(bar)
		engine.AcceptHook(hook)
		Expect(engine.Run(4)).To(Succeed())

		hook.Track(nil)
		Expect(engine.Run(2)).To(Succeed())

		_, body := get("/api/progress")

		var bars []ProgressBarStatus
		Expect(json.Unmarshal(body, &bars)).To(Succeed())
		Expect(bars).To(HaveLen(1))
		Expect(bars[0].Name).To(Equal("Run"))
		Expect(bars[0].Total).To(Equal(uint64(10)))
		Expect(bars[0].Finished).To(Equal(uint64(4)))

		m.CompleteProgressBar(bar)
		_, body = get("/api/progress")
		Expect(string(body)).To(Equal("[]"))
	})
})
