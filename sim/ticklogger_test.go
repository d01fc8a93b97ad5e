package sim

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TickLogger", func() {
	It("should log every given number of ticks", func() {
		buf := new(bytes.Buffer)
		engine := NewSerialEngine().WithStartAbsTick(100)
		engine.AcceptHook(NewTickLogger(log.New(buf, "", 0), 10))

		Expect(engine.Run(21)).To(Succeed())

		Expect(buf.String()).To(Equal(
			"tick 0 (abs 100)\ntick 10 (abs 110)\ntick 20 (abs 120)\n"))
	})

	It("should fall back to the standard logger", func() {
		h := NewTickLogger(nil, 10)

		Expect(h.Logger).To(BeIdenticalTo(log.Default()))
	})
})
