package persistence_test

import (
	"context"

	"catalog-server/internal/catalog/domain"
	"catalog-server/internal/catalog/persistence"
	"catalog-server/internal/catalog/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("SimpleProductRepository", func() {
	var repository *persistence.SimpleProductRepository
	var ctx context.Context

	ginkgo.BeforeEach(func() {
		var err error
		repository, err = persistence.NewProductRepository(newTestORM())
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.When("products share an EAN", func() {
		ginkgo.BeforeEach(func() {
			for _, model := range []string{"Redmi Note 14", "Redmi Note 14 Pro"} {
				product, _ := domain.NewProductBuilder().
					WithTenantID("tenant-1").
					WithCategoryID("category-1").
					WithModel(model).
					WithEAN("7891234567890").
					WithSpecs(map[string]string{"ram": "6GB"}).
					Build()
				gomega.Expect(repository.Create(ctx, product)).To(gomega.Succeed())
			}
		})

		ginkgo.It("FindByEAN returns every match in insertion order", func() {
			products, err := repository.FindByEAN(ctx, "tenant-1", "7891234567890")

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(products).To(gomega.HaveLen(2))
			gomega.Expect(products[0].Specs).To(gomega.HaveKeyWithValue("ram", "6GB"))
		})

		ginkgo.It("FindByEAN returns empty for other tenants", func() {
			products, err := repository.FindByEAN(ctx, "tenant-2", "7891234567890")

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(products).To(gomega.BeEmpty())
		})

		ginkgo.It("FindByEAN returns empty for unseen codes", func() {
			products, err := repository.FindByEAN(ctx, "tenant-1", "0000000000000")

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(products).To(gomega.BeEmpty())
		})
	})

	ginkgo.When("the product does not exist", func() {
		ginkgo.It("GetByID returns the not found sentinel", func() {
			_, err := repository.GetByID(ctx, "missing")

			gomega.Expect(err).To(gomega.MatchError(usecases.ErrProductNotFound))
		})
	})
})
