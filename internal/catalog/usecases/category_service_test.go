package usecases_test

import (
	"context"

	"catalog-server/internal/catalog/domain"
	"catalog-server/internal/catalog/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SimpleCategoryService", func() {
	var service *usecases.SimpleCategoryService
	var repository *fakeCategoryRepository
	var ctx context.Context
	var category domain.Category

	BeforeEach(func() {
		repository = newFakeCategoryRepository()
		service = usecases.NewCategoryService(repository)
		ctx = context.Background()

		category, _ = domain.NewCategoryBuilder().
			WithTenantID("tenant-1").
			WithName("Smartphones").
			Build()
		Expect(service.CreateCategory(ctx, category)).To(Succeed())
	})

	Context("CreateCategory", func() {
		It("stores the config fully normalized", func() {
			stored, err := service.GetCategory(ctx, category.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Config.IMEI1).To(Equal(domain.FieldOptional))
			Expect(stored.Config.BatteryHealth).To(Equal(domain.FieldOptional))
		})
	})

	Context("UpdateConfig", func() {
		It("replaces the whole config in one write", func() {
			config := domain.CategoryConfig{
				IMEI1:        domain.FieldRequired,
				SerialNumber: domain.FieldRequired,
			}

			updated, err := service.UpdateConfig(ctx, category.ID, config)

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Config.IMEI1).To(Equal(domain.FieldRequired))
			Expect(updated.Config.IMEI2).To(Equal(domain.FieldOptional))
		})

		It("rejects configs with invalid exclude entries", func() {
			config := domain.CategoryConfig{
				EANAutofill: domain.EANAutofill{ExcludeFields: []string{"nope"}},
			}

			_, err := service.UpdateConfig(ctx, category.ID, config)

			Expect(err).To(MatchError(ContainSubstring("unknown autofill exclude field")))
		})

		It("returns ErrCategoryNotFound for unknown categories", func() {
			_, err := service.UpdateConfig(ctx, "missing", domain.CategoryConfig{})

			Expect(err).To(MatchError(usecases.ErrCategoryNotFound))
		})
	})

	Context("AddCustomField", func() {
		var field domain.CustomField

		BeforeEach(func() {
			field, _ = domain.NewCustomFieldBuilder().
				WithLabel("Saúde da Bateria (%)").
				WithType(domain.CustomFieldNumber).
				Build()
		})

		It("appends a new field to the config", func() {
			added, err := service.AddCustomField(ctx, category.ID, field)

			Expect(err).NotTo(HaveOccurred())
			Expect(added.Key).To(Equal("saude_da_bateria"))

			stored, _ := service.GetCategory(ctx, category.ID)
			Expect(stored.Config.CustomFields).To(HaveLen(1))
		})

		It("reuses the existing field when the key collides", func() {
			_, err := service.AddCustomField(ctx, category.ID, field)
			Expect(err).NotTo(HaveOccurred())

			colliding, _ := domain.NewCustomFieldBuilder().
				WithLabel("saude da bateria").
				WithType(domain.CustomFieldText).
				Build()
			reused, err := service.AddCustomField(ctx, category.ID, colliding)

			Expect(err).NotTo(HaveOccurred())
			Expect(reused.Type).To(Equal(domain.CustomFieldNumber))

			stored, _ := service.GetCategory(ctx, category.ID)
			Expect(stored.Config.CustomFields).To(HaveLen(1))
		})
	})
})
