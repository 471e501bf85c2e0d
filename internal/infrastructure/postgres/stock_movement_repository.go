package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/faro-api/internal/domain"
	"github.com/jhoicas/faro-api/internal/domain/entity"
	"github.com/jhoicas/faro-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo registro append-only de movimientos de stock (movimientos_stock).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, company_id, fk_id_orden, fk_id_articulos, origen, tipo, cantidad,
	COALESCE(idempotency_key, ''), created_by, created_at`

// Record inserta el movimiento. Si la empresa ya tiene uno con la misma idempotency_key
// devuelve el registrado previamente sin insertar otro; si ese registro corresponde a otro
// ajuste (artículo, tipo o cantidad distintos) devuelve domain.ErrConflict.
func (r *StockMovementRepo) Record(ctx context.Context, m *entity.StockMovement) (*entity.StockMovement, error) {
	var key any
	if m.IdempotencyKey != "" {
		key = m.IdempotencyKey
	}
	query := `
		INSERT INTO movimientos_stock (company_id, fk_id_orden, fk_id_articulos, origen, tipo, cantidad,
			idempotency_key, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (company_id, idempotency_key) DO NOTHING
		RETURNING ` + movementColumns
	saved, err := scanMovement(r.q.QueryRow(ctx, query,
		m.CompanyID, m.FkIDOrden, m.FkIDArticulo, m.Origen, m.Tipo, m.Cantidad, key, m.CreatedBy,
	))
	if err == nil {
		return saved, nil
	}
	if !isNoRows(err) || key == nil {
		return nil, fmt.Errorf("insert movimiento_stock: %w", err)
	}

	// Conflicto de idempotencia: devolver el registro original.
	saved, err = scanMovement(r.q.QueryRow(ctx,
		`SELECT `+movementColumns+` FROM movimientos_stock WHERE company_id = $1 AND idempotency_key = $2`,
		m.CompanyID, key))
	if err != nil {
		return nil, fmt.Errorf("get movimiento_stock por idempotency_key: %w", err)
	}
	if !saved.SameAdjustment(m) {
		return nil, fmt.Errorf("idempotency_key %q ya usada por otro ajuste: %w", m.IdempotencyKey, domain.ErrConflict)
	}
	return saved, nil
}

// ListByArticle lista los movimientos de un artículo, más recientes primero.
func (r *StockMovementRepo) ListByArticle(ctx context.Context, articleID int64, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimientos_stock WHERE fk_id_articulos = $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, articleID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos_stock: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento_stock: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(s scanner) (*entity.StockMovement, error) {
	var m entity.StockMovement
	err := s.Scan(
		&m.ID, &m.CompanyID, &m.FkIDOrden, &m.FkIDArticulo, &m.Origen, &m.Tipo, &m.Cantidad,
		&m.IdempotencyKey, &m.CreatedBy, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
