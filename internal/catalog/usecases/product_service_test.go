package usecases_test

import (
	"context"

	"catalog-server/internal/catalog/domain"
	"catalog-server/internal/catalog/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SimpleProductService", func() {
	var service *usecases.SimpleProductService
	var repository *fakeProductRepository
	var categories *fakeCategoryRepository
	var ctx context.Context
	var category domain.Category

	BeforeEach(func() {
		repository = newFakeProductRepository()
		categories = newFakeCategoryRepository()
		service = usecases.NewProductService(repository, categories)
		ctx = context.Background()

		category, _ = domain.NewCategoryBuilder().
			WithTenantID("tenant-1").
			WithName("Smartphones").
			Build()
		Expect(categories.Create(ctx, category)).To(Succeed())
	})

	Context("CreateProduct", func() {
		It("rejects products pointing to a missing category", func() {
			product, _ := domain.NewProductBuilder().
				WithTenantID("tenant-1").
				WithCategoryID("missing").
				Build()

			err := service.CreateProduct(ctx, product)

			Expect(err).To(MatchError(usecases.ErrCategoryNotFound))
		})
	})

	Context("SearchByEAN", func() {
		BeforeEach(func() {
			for _, name := range []string{"unit a", "unit b"} {
				product, _ := domain.NewProductBuilder().
					WithTenantID("tenant-1").
					WithCategoryID(category.ID).
					WithName(name).
					WithEAN("7891234567890").
					Build()
				Expect(service.CreateProduct(ctx, product)).To(Succeed())
			}
		})

		It("returns every product sharing the code", func() {
			products, err := service.SearchByEAN(ctx, "tenant-1", "7891234567890")

			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(2))
		})

		It("returns an empty result for unseen codes", func() {
			products, err := service.SearchByEAN(ctx, "tenant-1", "0000000000000")

			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(BeEmpty())
		})

		It("scopes the search to the tenant", func() {
			products, err := service.SearchByEAN(ctx, "tenant-2", "7891234567890")

			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(BeEmpty())
		})
	})
})
