package utils_test

import (
	"catalog-server/internal/infra/utils"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Slugify", func() {
	ginkgo.Context("with plain display names", func() {
		ginkgo.It("should lowercase single words", func() {
			result := utils.Slugify("Color")
			gomega.Expect(result).To(gomega.Equal("color"))
		})

		ginkgo.It("should join words with underscores", func() {
			result := utils.Slugify("Battery Health")
			gomega.Expect(result).To(gomega.Equal("battery_health"))
		})

		ginkgo.It("should leave an existing key unchanged", func() {
			result := utils.Slugify("battery_health")
			gomega.Expect(result).To(gomega.Equal("battery_health"))
		})
	})

	ginkgo.Context("with diacritics", func() {
		ginkgo.It("should strip accents", func() {
			result := utils.Slugify("Versão do Sistema")
			gomega.Expect(result).To(gomega.Equal("versao_do_sistema"))
		})

		ginkgo.It("should strip cedillas", func() {
			result := utils.Slugify("Observação")
			gomega.Expect(result).To(gomega.Equal("observacao"))
		})
	})

	ginkgo.Context("with punctuation", func() {
		ginkgo.It("should collapse runs of non-alphanumerics", func() {
			result := utils.Slugify("Saúde da Bateria (%)")
			gomega.Expect(result).To(gomega.Equal("saude_da_bateria"))
		})

		ginkgo.It("should drop leading and trailing separators", func() {
			result := utils.Slugify("  - Cor / Tom -  ")
			gomega.Expect(result).To(gomega.Equal("cor_tom"))
		})

		ginkgo.It("should keep digits", func() {
			result := utils.Slugify("IMEI 2")
			gomega.Expect(result).To(gomega.Equal("imei_2"))
		})
	})

	ginkgo.Context("idempotence", func() {
		ginkgo.It("should be a no-op on its own output", func() {
			once := utils.Slugify("Saúde da Bateria (%)")
			twice := utils.Slugify(once)
			gomega.Expect(twice).To(gomega.Equal(once))
		})
	})
})
