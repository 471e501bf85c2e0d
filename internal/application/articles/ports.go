package articles

import (
	"context"

	"github.com/jhoicas/faro-api/internal/domain/entity"
)

// TrialChecker consulta la prueba gratis / suscripción de la empresa.
// Si la prueba venció llama a onExpired (si no es nil) y devuelve true.
type TrialChecker interface {
	CheckTrial(ctx context.Context, companyID string, onExpired func()) (bool, error)
}

// MovementReportGenerator genera el PDF (kardex) de movimientos de un artículo.
type MovementReportGenerator interface {
	GenerateMovementReport(ctx context.Context, article *entity.Article, movements []*entity.StockMovement) ([]byte, error)
}
