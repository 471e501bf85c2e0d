package repository

import (
	"context"

	"github.com/jhoicas/faro-api/internal/domain/entity"
)

// CashMovementRepository registra movimientos de caja en el detalle de lotes de operaciones.
type CashMovementRepository interface {
	Record(ctx context.Context, movement *entity.CashMovement) error
}
