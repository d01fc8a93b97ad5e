package thing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StorageSettings", func() {
	var (
		steel, parka *Def
		settings     *StorageSettings
	)

	BeforeEach(func() {
		steel = &Def{Name: "Steel", Label: "steel", StackLimit: 75}
		parka = &Def{Name: "Parka", Label: "parka", StackLimit: 1, HasQuality: true}
		settings = NewStorageSettings()
	})

	It("should reject everything by default", func() {
		Expect(settings.AllowedToAccept(MakeStack(steel, 10))).To(BeFalse())
	})

	It("should accept allowed kinds", func() {
		settings.Filter.SetAllow(steel, true)

		Expect(settings.AllowedToAccept(MakeStack(steel, 10))).To(BeTrue())

		settings.Filter.SetAllow(steel, false)
		Expect(settings.AllowedToAccept(MakeStack(steel, 10))).To(BeFalse())
	})

	It("should apply the quality range", func() {
		settings.Filter.SetAllow(parka, true)
		settings.Filter.SetAllowedQualities(QualityRange{Min: QualityGood, Max: QualityLegendary})

		item := MakeThing(parka)
		Expect(settings.AllowedToAccept(item)).To(BeFalse())

		item.SetQuality(QualityMasterwork)
		Expect(settings.AllowedToAccept(item)).To(BeTrue())
	})

	It("should be bounded by the parent settings", func() {
		parent := NewStorageSettings()
		settings.Parent = parent
		settings.Filter.SetAllow(steel, true)

		Expect(settings.AllowedToAccept(MakeStack(steel, 1))).To(BeFalse())

		parent.Filter.SetAllow(steel, true)
		Expect(settings.AllowedToAccept(MakeStack(steel, 1))).To(BeTrue())
	})

	It("should copy from other settings", func() {
		other := NewStorageSettings()
		other.Priority = PriorityCritical
		other.Filter.SetAllow(steel, true)

		settings.CopyFrom(other)
		other.Filter.SetAllow(steel, false)

		Expect(settings.Priority).To(Equal(PriorityCritical))
		Expect(settings.Filter.AllowedDefNames()).To(Equal([]string{"Steel"}))
	})
})

var _ = Describe("Thing", func() {
	It("should report the space left in a stack", func() {
		steel := &Def{Name: "Steel", Label: "steel", StackLimit: 75}
		t := MakeStack(steel, 70)

		Expect(t.SpaceLeft()).To(Equal(5))
		Expect(t.String()).To(Equal("steel x70"))
	})

	It("should give quality to kinds with quality", func() {
		parka := &Def{Name: "Parka", Label: "parka", StackLimit: 1, HasQuality: true}

		q, ok := MakeThing(parka).TryGetQuality()
		Expect(ok).To(BeTrue())
		Expect(q).To(Equal(QualityNormal))
	})

	It("should capitalize labels", func() {
		Expect(CapitalizeFirst("steel")).To(Equal("Steel"))
		Expect(CapitalizeFirst("")).To(Equal(""))
	})
})
