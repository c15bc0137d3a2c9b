package usecases

import (
	"context"
	"io"

	catalogdomain "catalog-server/internal/catalog/domain"
	"catalog-server/internal/intake/domain"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/intake/usecases/api_mock.go -package=usecases

type ImportService interface {
	CreateSession(ctx context.Context, tenantID shareddomain.ID, input io.Reader) (domain.ImportSession, error)
	GetSession(ctx context.Context, id shareddomain.ID) (domain.ImportSession, error)
	Preview(ctx context.Context, id shareddomain.ID) ([]domain.RowPreview, error)
	Commit(ctx context.Context, id shareddomain.ID) (domain.CommitResult, error)
	Cancel(ctx context.Context, id shareddomain.ID) error
}

// ProductFinder is the catalog lookup collaborator. Zero, one and many
// matches are all legitimate outcomes; only unavailability is an error.
type ProductFinder interface {
	SearchByEAN(ctx context.Context, tenantID shareddomain.ID, ean string) ([]catalogdomain.Product, error)
}

// UnitCreator is the catalog write collaborator used by the commit loop.
type UnitCreator interface {
	CreateUnit(ctx context.Context, unit catalogdomain.Unit) (catalogdomain.Unit, error)
}
