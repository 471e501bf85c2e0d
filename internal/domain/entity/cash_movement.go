package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
const (
	CashTipoIngreso = "ingreso"
	CashTipoEgreso  = "egreso"
)

// CashMovement es un registro inmutable en el detalle de un lote de operaciones
// contra una cuenta de tesorería.
type CashMovement struct {
	ID                  int64
	CompanyID           string
	FkIDLote            int64
	FkIDCuentaTesoreria int64
	Tipo                string
	Monto               decimal.Decimal
	CreatedAt           time.Time
}
