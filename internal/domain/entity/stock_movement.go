package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTipoEntrada = "entrada"
	MovementTipoSalida  = "salida"
)

// Orígenes de movimiento de stock.
const (
	MovementOrigenAjuste = "AJUSTE"
)

// StockMovement es un registro inmutable de un cambio de stock de un artículo.
// Cantidad es con signo: positiva en entradas, negativa en salidas.
type StockMovement struct {
	ID             int64
	CompanyID      string
	FkIDOrden      *int64 // nil = ajuste sin orden asociada
	FkIDArticulo   int64
	Origen         string
	Tipo           string
	Cantidad       int
	IdempotencyKey string // vacío = sin deduplicación
	CreatedBy      string
	CreatedAt      time.Time
}

// SameAdjustment informa si o corresponde al mismo ajuste que m: misma empresa, artículo,
// tipo y cantidad. Sirve para validar un reintento con la misma clave de idempotencia.
func (m *StockMovement) SameAdjustment(o *StockMovement) bool {
	return m.CompanyID == o.CompanyID &&
		m.FkIDArticulo == o.FkIDArticulo &&
		m.Tipo == o.Tipo &&
		m.Cantidad == o.Cantidad
}
