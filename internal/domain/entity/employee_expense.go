package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeExpense es un gasto asociado a un empleado (adelanto, sueldo, etc.).
type EmployeeExpense struct {
	ID                int64
	CompanyID         string
	FkEmpleado        int64
	FkTipoGasto       int64
	Monto             decimal.Decimal
	Descripcion       string
	Fecha             time.Time
	FkLoteOperaciones *int64
	FkCuentaTesoreria *int64
	CreatedAt         time.Time
}
