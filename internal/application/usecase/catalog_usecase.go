package usecase

import (
	"context"

	"github.com/jhoicas/faro-api/internal/application/dto"
	"github.com/jhoicas/faro-api/internal/domain/repository"
)

// CatalogUseCase listas de referencia de solo lectura para los selectores del formulario.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (uc *CatalogUseCase) Agrupadores(ctx context.Context, companyID string) ([]dto.CatalogItem, error) {
	list, err := uc.repo.ListAgrupadores(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogItem, 0, len(list))
	for _, a := range list {
		out = append(out, dto.CatalogItem{ID: a.ID, Label: a.Nombre})
	}
	return out, nil
}

func (uc *CatalogUseCase) Marcas(ctx context.Context, companyID string) ([]dto.CatalogItem, error) {
	list, err := uc.repo.ListMarcas(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogItem, 0, len(list))
	for _, m := range list {
		out = append(out, dto.CatalogItem{ID: m.ID, Label: m.Descripcion})
	}
	return out, nil
}

func (uc *CatalogUseCase) TiposGasto(ctx context.Context, companyID string) ([]dto.CatalogItem, error) {
	list, err := uc.repo.ListTiposGasto(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogItem, 0, len(list))
	for _, t := range list {
		out = append(out, dto.CatalogItem{ID: t.ID, Label: t.Descripcion})
	}
	return out, nil
}
