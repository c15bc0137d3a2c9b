package domain_test

import (
	"catalog-server/internal/intake/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ImportSession", func() {
	var session domain.ImportSession

	BeforeEach(func() {
		session, _ = domain.NewImportSessionBuilder().
			WithTenantID("tenant-1").
			WithRows([]domain.BulkRow{{Index: 1, Values: map[string]string{"ean": "7891234567895"}}}).
			Build()
	})

	It("starts in the parsed state", func() {
		Expect(session.State).To(Equal(domain.SessionParsed))
		Expect(session.ID).NotTo(BeEmpty())
	})

	Context("state transitions", func() {
		It("walks parsed to complete in order", func() {
			Expect(session.MarkPreviewed(nil)).To(Succeed())
			Expect(session.State).To(Equal(domain.SessionPreviewed))

			Expect(session.BeginCommit()).To(Succeed())
			Expect(session.State).To(Equal(domain.SessionCommitting))

			Expect(session.CompleteCommit(domain.CommitResult{Total: 1, Success: 1})).To(Succeed())
			Expect(session.State).To(Equal(domain.SessionComplete))
			Expect(session.Result.Success).To(Equal(1))
		})

		It("rejects committing a parsed session", func() {
			Expect(session.BeginCommit()).To(MatchError(domain.ErrInvalidSessionState))
		})

		It("allows recomputing a preview", func() {
			Expect(session.MarkPreviewed(nil)).To(Succeed())
			Expect(session.MarkPreviewed(nil)).To(Succeed())
		})

		It("cancel discards previews and returns to parsed", func() {
			previews := []domain.RowPreview{{Row: session.Rows[0]}}
			Expect(session.MarkPreviewed(previews)).To(Succeed())

			Expect(session.Cancel()).To(Succeed())
			Expect(session.State).To(Equal(domain.SessionParsed))
			Expect(session.Previews).To(BeNil())
		})

		It("rejects cancelling an in-flight commit", func() {
			Expect(session.MarkPreviewed(nil)).To(Succeed())
			Expect(session.BeginCommit()).To(Succeed())

			Expect(session.Cancel()).To(MatchError(domain.ErrInvalidSessionState))
		})
	})

	Context("BulkRow", func() {
		It("separates recognized columns from pass-through fields", func() {
			row := domain.BulkRow{Index: 1, Values: map[string]string{
				"ean":           "7891234567895",
				"serial_number": "SN1",
				"imei1":         "123456789012345",
				"supplier":      "Distribuidora X",
			}}

			Expect(row.EAN()).To(Equal("7891234567895"))
			Expect(row.SerialNumber()).To(Equal("SN1"))
			Expect(row.PassThrough()).To(Equal(map[string]string{"supplier": "Distribuidora X"}))
		})
	})

	Context("CommitResult", func() {
		It("accumulates by value with total always equal to success plus failed", func() {
			result := domain.CommitResult{}
			result = result.WithSuccess()
			result = result.WithFailure(3, "storage full")
			result = result.WithSuccess()

			Expect(result.Total).To(Equal(3))
			Expect(result.Success).To(Equal(2))
			Expect(result.Failed).To(Equal(1))
			Expect(result.Errors).To(ConsistOf(domain.RowError{Row: 3, Message: "storage full"}))
			Expect(result.Total).To(Equal(result.Success + result.Failed))
		})
	})
})
