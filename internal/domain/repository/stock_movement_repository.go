package repository

import (
	"context"

	"github.com/jhoicas/faro-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de registro de movimientos de stock.
// Record es append-only; si la empresa ya tiene IdempotencyKey devuelve el registro previo sin
// duplicarlo, o domain.ErrConflict si ese registro es de otro ajuste.
type StockMovementRepository interface {
	Record(ctx context.Context, movement *entity.StockMovement) (*entity.StockMovement, error)
	ListByArticle(ctx context.Context, articleID int64, limit, offset int) ([]*entity.StockMovement, error)
}
