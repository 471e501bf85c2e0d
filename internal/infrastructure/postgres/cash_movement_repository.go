package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/faro-api/internal/domain"
	"github.com/jhoicas/faro-api/internal/domain/entity"
	"github.com/jhoicas/faro-api/internal/domain/repository"
)

var _ repository.CashMovementRepository = (*CashMovementRepo)(nil)

// CashMovementRepo detalle de lotes de operaciones (movimientos de caja).
type CashMovementRepo struct {
	q Querier
}

func NewCashMovementRepository(q Querier) *CashMovementRepo {
	return &CashMovementRepo{q: q}
}

// Record inserta el movimiento de caja y completa ID y fecha de alta.
func (r *CashMovementRepo) Record(ctx context.Context, m *entity.CashMovement) error {
	query := `
		INSERT INTO detalle_lotes_operaciones (company_id, fk_id_lote, fk_id_cuenta_tesoreria, tipo, monto)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		m.CompanyID, m.FkIDLote, m.FkIDCuentaTesoreria, m.Tipo, m.Monto,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert detalle_lotes_operaciones: lote o cuenta inexistente: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert detalle_lotes_operaciones: %w", err)
	}
	return nil
}
