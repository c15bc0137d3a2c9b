package usecases_test

import (
	"context"

	"catalog-server/internal/shared_kernel/domain"
	"catalog-server/internal/shared_kernel/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeTenantRepository struct {
	byID   map[domain.ID]domain.Tenant
	byName map[string]domain.Tenant
	err    error
}

func newFakeTenantRepository() *fakeTenantRepository {
	return &fakeTenantRepository{
		byID:   make(map[domain.ID]domain.Tenant),
		byName: make(map[string]domain.Tenant),
	}
}

func (f *fakeTenantRepository) Create(_ context.Context, tenant domain.Tenant) error {
	if f.err != nil {
		return f.err
	}
	f.byID[tenant.ID] = tenant
	f.byName[tenant.Name] = tenant
	return nil
}

func (f *fakeTenantRepository) GetByID(_ context.Context, id domain.ID) (domain.Tenant, error) {
	if f.err != nil {
		return domain.Tenant{}, f.err
	}
	tenant, ok := f.byID[id]
	if !ok {
		return domain.Tenant{}, usecases.ErrTenantNotFound
	}
	return tenant, nil
}

func (f *fakeTenantRepository) GetByName(_ context.Context, name string) (domain.Tenant, error) {
	if f.err != nil {
		return domain.Tenant{}, f.err
	}
	tenant, ok := f.byName[name]
	if !ok {
		return domain.Tenant{}, usecases.ErrTenantNotFound
	}
	return tenant, nil
}

func (f *fakeTenantRepository) Update(_ context.Context, tenant domain.Tenant) error {
	if f.err != nil {
		return f.err
	}
	f.byID[tenant.ID] = tenant
	f.byName[tenant.Name] = tenant
	return nil
}

func (f *fakeTenantRepository) FindAll(_ context.Context, includeDeleted bool, _ usecases.Pagination) ([]domain.Tenant, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var result []domain.Tenant
	for _, tenant := range f.byID {
		if tenant.IsDeleted() && !includeDeleted {
			continue
		}
		result = append(result, tenant)
	}
	return result, len(result), nil
}

var _ = Describe("SimpleTenantService", func() {
	var service *usecases.SimpleTenantService
	var repository *fakeTenantRepository
	var ctx context.Context

	BeforeEach(func() {
		repository = newFakeTenantRepository()
		service = usecases.NewTenantService(repository)
		ctx = context.Background()
	})

	Context("CreateTenant", func() {
		var tenant domain.Tenant

		BeforeEach(func() {
			tenant, _ = domain.NewTenantBuilder().
				WithName("acme-store").
				WithEmail("ops@acme.example").
				Build()
		})

		It("persists the tenant", func() {
			err := service.CreateTenant(ctx, tenant)

			Expect(err).NotTo(HaveOccurred())
			stored, err := service.GetTenant(ctx, tenant.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Name).To(Equal("acme-store"))
		})

		When("a tenant with the same name exists", func() {
			BeforeEach(func() {
				Expect(service.CreateTenant(ctx, tenant)).To(Succeed())
			})

			It("returns ErrTenantDuplicated", func() {
				duplicate, _ := domain.NewTenantBuilder().
					WithName("acme-store").
					Build()

				err := service.CreateTenant(ctx, duplicate)

				Expect(err).To(MatchError(usecases.ErrTenantDuplicated))
			})
		})
	})

	Context("UpdateTenant", func() {
		var tenant domain.Tenant

		BeforeEach(func() {
			tenant, _ = domain.NewTenantBuilder().
				WithName("acme-store").
				Build()
			Expect(service.CreateTenant(ctx, tenant)).To(Succeed())
		})

		It("applies the new info", func() {
			update := domain.Tenant{ID: tenant.ID, Description: "flagship store"}

			err := service.UpdateTenant(ctx, update)

			Expect(err).NotTo(HaveOccurred())
			stored, _ := service.GetTenant(ctx, tenant.ID)
			Expect(stored.Description).To(Equal("flagship store"))
		})

		When("the version does not match", func() {
			It("returns ErrTenantVersionConflict", func() {
				update := domain.Tenant{ID: tenant.ID, Version: 42}

				err := service.UpdateTenant(ctx, update)

				Expect(err).To(MatchError(usecases.ErrTenantVersionConflict))
			})
		})

		When("the tenant is soft deleted", func() {
			BeforeEach(func() {
				Expect(service.SoftDeleteTenant(ctx, tenant.ID)).To(Succeed())
			})

			It("returns ErrTenantSoftDeleted", func() {
				err := service.UpdateTenant(ctx, domain.Tenant{ID: tenant.ID})

				Expect(err).To(MatchError(usecases.ErrTenantSoftDeleted))
			})
		})
	})

	Context("SoftDeleteTenant", func() {
		var tenant domain.Tenant

		BeforeEach(func() {
			tenant, _ = domain.NewTenantBuilder().
				WithName("acme-store").
				Build()
			Expect(service.CreateTenant(ctx, tenant)).To(Succeed())
		})

		It("hides the tenant from default listings", func() {
			Expect(service.SoftDeleteTenant(ctx, tenant.ID)).To(Succeed())

			visible, total, err := service.ListTenants(ctx, false, usecases.Pagination{Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeZero())
			Expect(visible).To(BeEmpty())

			all, total, err := service.ListTenants(ctx, true, usecases.Pagination{Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(1))
			Expect(all[0].IsActive).To(BeFalse())
		})
	})

	Context("GetTenant", func() {
		When("the tenant does not exist", func() {
			It("returns ErrTenantNotFound", func() {
				_, err := service.GetTenant(ctx, domain.ID("missing"))

				Expect(err).To(MatchError(usecases.ErrTenantNotFound))
			})
		})
	})
})
