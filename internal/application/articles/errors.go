package articles

import (
	"fmt"

	"github.com/jhoicas/faro-api/internal/domain/entity"
)

// Stage indica en qué paso del envío falló la operación.
type Stage string

const (
	StageMovement Stage = "movement" // registro de un movimiento de stock
	StagePersist  Stage = "persist"  // alta o actualización del artículo
)

// SubmitError es una falla remota durante el envío del formulario. Los movimientos en
// Recorded ya quedaron registrados y no se revierten: el envío no es atómico.
type SubmitError struct {
	Stage    Stage
	Recorded []*entity.StockMovement
	Err      error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("envío de artículo (%s, %d movimientos registrados): %v", e.Stage, len(e.Recorded), e.Err)
}

func (e *SubmitError) Unwrap() error { return e.Err }
