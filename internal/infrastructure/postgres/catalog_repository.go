package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/faro-api/internal/domain/entity"
	"github.com/jhoicas/faro-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo listas de referencia (agrupadores, marcas, tipos de gasto). Solo lectura.
type CatalogRepo struct {
	q Querier
}

func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

func (r *CatalogRepo) ListAgrupadores(ctx context.Context, companyID string) ([]entity.Agrupador, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, nombre FROM agrupadores WHERE company_id = $1 ORDER BY nombre`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list agrupadores: %w", err)
	}
	defer rows.Close()

	var list []entity.Agrupador
	for rows.Next() {
		var a entity.Agrupador
		if err := rows.Scan(&a.ID, &a.Nombre); err != nil {
			return nil, fmt.Errorf("scan agrupador: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *CatalogRepo) ListMarcas(ctx context.Context, companyID string) ([]entity.Marca, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, descripcion FROM marcas WHERE company_id = $1 ORDER BY descripcion`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list marcas: %w", err)
	}
	defer rows.Close()

	var list []entity.Marca
	for rows.Next() {
		var m entity.Marca
		if err := rows.Scan(&m.ID, &m.Descripcion); err != nil {
			return nil, fmt.Errorf("scan marca: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListTiposGasto los tipos de gasto son globales (no dependen de la empresa).
func (r *CatalogRepo) ListTiposGasto(ctx context.Context, _ string) ([]entity.TipoGasto, error) {
	rows, err := r.q.Query(ctx, `SELECT id, descripcion FROM tipos_gasto ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tipos_gasto: %w", err)
	}
	defer rows.Close()

	var list []entity.TipoGasto
	for rows.Next() {
		var t entity.TipoGasto
		if err := rows.Scan(&t.ID, &t.Descripcion); err != nil {
			return nil, fmt.Errorf("scan tipo_gasto: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
