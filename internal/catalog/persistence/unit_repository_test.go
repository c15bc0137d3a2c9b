package persistence_test

import (
	"context"

	"catalog-server/internal/catalog/domain"
	"catalog-server/internal/catalog/persistence"
	"catalog-server/internal/catalog/usecases"
	"catalog-server/internal/infra/utils"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("SimpleUnitRepository", func() {
	var repository *persistence.SimpleUnitRepository
	var ctx context.Context

	ginkgo.BeforeEach(func() {
		var err error
		repository, err = persistence.NewUnitRepository(newTestORM())
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.When("a unit is stored", func() {
		var unit domain.Unit

		ginkgo.BeforeEach(func() {
			battery := 85
			unit, _ = domain.NewUnitBuilder().
				WithTenantID("tenant-1").
				WithProductID("product-1").
				WithCategoryID("category-1").
				WithCondition(domain.ConditionUsed).
				WithSerialNumber("SN-001").
				WithIMEIs("123456789012345", "").
				WithBatteryHealth(utils.IntPtr(battery)).
				WithFields(map[string]string{"grade": "A"}).
				WithName("Redmi Note 14, 6GB/256GB").
				Build()
			gomega.Expect(repository.Create(ctx, unit)).To(gomega.Succeed())
		})

		ginkgo.It("round trips every field", func() {
			stored, err := repository.GetByID(ctx, unit.ID)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(stored.Condition).To(gomega.Equal(domain.ConditionUsed))
			gomega.Expect(stored.SerialNumber).To(gomega.Equal("SN-001"))
			gomega.Expect(stored.IMEI1).To(gomega.Equal("123456789012345"))
			gomega.Expect(stored.BatteryHealth).To(gomega.HaveValue(gomega.Equal(85)))
			gomega.Expect(stored.Fields).To(gomega.HaveKeyWithValue("grade", "A"))
			gomega.Expect(stored.Name).To(gomega.Equal("Redmi Note 14, 6GB/256GB"))
		})

		ginkgo.It("lists units scoped to the tenant", func() {
			units, total, err := repository.FindAll(ctx, "tenant-1", usecases.Pagination{Limit: 10})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(1))
			gomega.Expect(units).To(gomega.HaveLen(1))
		})
	})

	ginkgo.When("the unit does not exist", func() {
		ginkgo.It("GetByID returns the not found sentinel", func() {
			_, err := repository.GetByID(ctx, "missing")

			gomega.Expect(err).To(gomega.MatchError(usecases.ErrUnitNotFound))
		})
	})
})
