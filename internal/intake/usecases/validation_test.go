package usecases_test

import (
	"catalog-server/internal/intake/domain"
	"catalog-server/internal/intake/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func row(index int, values map[string]string) domain.BulkRow {
	return domain.BulkRow{Index: index, Values: values}
}

var _ = Describe("ValidateRows", func() {
	It("rejects a short EAN with the exact length error", func() {
		validations := usecases.ValidateRows([]domain.BulkRow{
			row(1, map[string]string{"ean": "789123", "serial_number": "SN1"}),
		})

		Expect(validations[0].Valid()).To(BeFalse())
		Expect(validations[0].Errors).To(ConsistOf("EAN must be 13 digits"))
	})

	It("treats a missing EAN the same as a short one", func() {
		validations := usecases.ValidateRows([]domain.BulkRow{
			row(1, map[string]string{"serial_number": "SN1"}),
		})

		Expect(validations[0].Errors).To(ContainElement("EAN must be 13 digits"))
	})

	It("collects every violation of a row instead of stopping at the first", func() {
		validations := usecases.ValidateRows([]domain.BulkRow{
			row(1, map[string]string{"ean": "789", "imei1": "12345"}),
		})

		Expect(validations[0].Errors).To(ConsistOf(
			"EAN must be 13 digits",
			"imei1 must be 15 digits",
			"serial number is required",
		))
	})

	It("enforces identifier length only on present values", func() {
		validations := usecases.ValidateRows([]domain.BulkRow{
			row(1, map[string]string{"ean": "7891234567895", "serial_number": "SN1"}),
		})

		Expect(validations[0].Valid()).To(BeTrue())
	})

	Context("duplicate detection", func() {
		It("warns only on later occurrences of a shared serial", func() {
			validations := usecases.ValidateRows([]domain.BulkRow{
				row(1, map[string]string{"ean": "7891234567895", "serial_number": "ABC123"}),
				row(2, map[string]string{"ean": "7891234567895", "serial_number": "XYZ789"}),
				row(3, map[string]string{"ean": "7891234567895", "serial_number": "ABC123"}),
			})

			Expect(validations[0].Warnings).To(BeEmpty())
			Expect(validations[1].Warnings).To(BeEmpty())
			Expect(validations[2].Warnings).To(HaveLen(1))
			Expect(validations[2].Warnings[0]).To(ContainSubstring("duplicate serial"))
		})

		It("warns on a repeated first identifier", func() {
			validations := usecases.ValidateRows([]domain.BulkRow{
				row(1, map[string]string{"ean": "7891234567895", "serial_number": "SN1", "imei1": "123456789012345"}),
				row(2, map[string]string{"ean": "7891234567895", "serial_number": "SN2", "imei1": "123456789012345"}),
			})

			Expect(validations[0].Warnings).To(BeEmpty())
			Expect(validations[1].Warnings).To(ConsistOf("duplicate imei1 in this import"))
		})

		It("keeps duplicate warnings out of the error list", func() {
			validations := usecases.ValidateRows([]domain.BulkRow{
				row(1, map[string]string{"ean": "7891234567895", "serial_number": "ABC123"}),
				row(2, map[string]string{"ean": "7891234567895", "serial_number": "ABC123"}),
			})

			Expect(validations[1].Valid()).To(BeTrue())
			Expect(validations[1].Warnings).NotTo(BeEmpty())
		})
	})
})
