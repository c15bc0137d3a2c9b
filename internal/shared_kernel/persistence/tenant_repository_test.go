package persistence_test

import (
	"context"
	"time"

	"catalog-server/internal/shared_kernel/domain"
	"catalog-server/internal/shared_kernel/persistence"
	"catalog-server/internal/shared_kernel/persistence/internal"
	"catalog-server/internal/shared_kernel/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("SimpleTenantRepository", func() {
	ginkgo.Context("model conversion", func() {
		var tenant domain.Tenant

		ginkgo.When("mapping a tenant through the internal model", func() {
			ginkgo.BeforeEach(func() {
				tenant = domain.Tenant{
					ID:        "test-id",
					Name:      "acme-store",
					Email:     "ops@acme.example",
					IsActive:  true,
					Version:   1,
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
				}
			})

			ginkgo.It("round trips all fields", func() {
				entity := internal.FromTenant(tenant)
				restored := entity.ToDomain()

				gomega.Expect(restored.ID).To(gomega.Equal(tenant.ID))
				gomega.Expect(restored.Name).To(gomega.Equal(tenant.Name))
				gomega.Expect(restored.Email).To(gomega.Equal(tenant.Email))
				gomega.Expect(restored.IsActive).To(gomega.BeTrue())
			})
		})
	})

	ginkgo.Context("TenantBuilder", func() {
		ginkgo.When("building a tenant", func() {
			ginkgo.It("fills identity and audit fields", func() {
				tenant, err := domain.NewTenantBuilder().
					WithName("acme-store").
					WithEmail("ops@acme.example").
					Build()

				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(tenant.ID).NotTo(gomega.BeEmpty())
				gomega.Expect(tenant.Version).To(gomega.Equal(1))
				gomega.Expect(tenant.IsActive).To(gomega.BeTrue())
			})
		})
	})

	ginkgo.Context("against the in-memory database", func() {
		var repository *persistence.SimpleTenantRepository
		var ctx context.Context

		ginkgo.BeforeEach(func() {
			orm := newTestORM()
			var err error
			repository, err = persistence.NewTenantRepository(orm)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			ctx = context.Background()
		})

		ginkgo.When("a tenant is created", func() {
			var tenant domain.Tenant

			ginkgo.BeforeEach(func() {
				tenant, _ = domain.NewTenantBuilder().
					WithName("acme-store").
					Build()
				gomega.Expect(repository.Create(ctx, tenant)).To(gomega.Succeed())
			})

			ginkgo.It("is found by id and by name", func() {
				byID, err := repository.GetByID(ctx, tenant.ID)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(byID.Name).To(gomega.Equal("acme-store"))

				byName, err := repository.GetByName(ctx, "acme-store")
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(byName.ID).To(gomega.Equal(tenant.ID))
			})

			ginkgo.It("is excluded from listings after soft deletion", func() {
				tenant.SoftDelete()
				gomega.Expect(repository.Update(ctx, tenant)).To(gomega.Succeed())

				visible, total, err := repository.FindAll(ctx, false, usecases.Pagination{Limit: 10})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(total).To(gomega.BeZero())
				gomega.Expect(visible).To(gomega.BeEmpty())

				all, total, err := repository.FindAll(ctx, true, usecases.Pagination{Limit: 10})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(total).To(gomega.Equal(1))
				gomega.Expect(all).To(gomega.HaveLen(1))
			})
		})

		ginkgo.When("the tenant does not exist", func() {
			ginkgo.It("returns the not found sentinel", func() {
				_, err := repository.GetByID(ctx, domain.ID("missing"))

				gomega.Expect(err).To(gomega.MatchError(usecases.ErrTenantNotFound))
			})
		})
	})
})
