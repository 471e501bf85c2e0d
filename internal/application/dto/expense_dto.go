package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest body para POST /api/gastos-empleados.
type CreateExpenseRequest struct {
	FkEmpleado        int64           `json:"fk_empleado" validate:"required,min=1"`
	FkTipoGasto       int64           `json:"fk_tipo_gasto" validate:"required,min=1"`
	Monto             decimal.Decimal `json:"monto" validate:"required,gt=0"`
	Descripcion       string          `json:"descripcion" validate:"max=500"`
	Fecha             *time.Time      `json:"fecha"`
	FkLoteOperaciones *int64          `json:"fk_lote_operaciones" validate:"omitempty,min=1"`
	FkCuentaTesoreria *int64          `json:"fk_cuenta_tesoreria" validate:"omitempty,min=1"`
}

// ExpenseResponse salida de un gasto de empleado.
type ExpenseResponse struct {
	ID                int64           `json:"id"`
	FkEmpleado        int64           `json:"fk_empleado"`
	FkTipoGasto       int64           `json:"fk_tipo_gasto"`
	Monto             decimal.Decimal `json:"monto"`
	Descripcion       string          `json:"descripcion"`
	Fecha             time.Time       `json:"fecha"`
	FkLoteOperaciones *int64          `json:"fk_lote_operaciones"`
	FkCuentaTesoreria *int64          `json:"fk_cuenta_tesoreria"`
	CashRegistered    bool            `json:"egreso_registrado"`
}
