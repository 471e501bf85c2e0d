package repository

import (
	"context"

	"github.com/jhoicas/faro-api/internal/domain/entity"
)

// CatalogRepository expone las listas de referencia de solo lectura.
type CatalogRepository interface {
	ListAgrupadores(ctx context.Context, companyID string) ([]entity.Agrupador, error)
	ListMarcas(ctx context.Context, companyID string) ([]entity.Marca, error)
	ListTiposGasto(ctx context.Context, companyID string) ([]entity.TipoGasto, error)
}
