package expenses

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/faro-api/internal/application/dto"
	"github.com/jhoicas/faro-api/internal/domain"
	"github.com/jhoicas/faro-api/internal/domain/entity"
	"github.com/jhoicas/faro-api/internal/domain/repository"
	"github.com/jhoicas/faro-api/pkg/logger"
)

// cashOutflowTypes tipos de gasto que además generan un egreso de caja.
var cashOutflowTypes = map[string]bool{
	"adelanto": true,
	"sueldo":   true,
	"otros":    true,
}

// LedgerError el gasto quedó guardado pero el egreso de caja falló. No se revierte el gasto.
type LedgerError struct {
	Expense *dto.ExpenseResponse
	Err     error
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("gasto %d guardado, egreso de caja falló: %v", e.Expense.ID, e.Err)
}

func (e *LedgerError) Unwrap() error { return e.Err }

// UseCase gastos de empleados y su egreso en el detalle de lotes de operaciones.
type UseCase struct {
	expenses repository.EmployeeExpenseRepository
	cash     repository.CashMovementRepository
	catalog  repository.CatalogRepository
	log      *logger.Logger
	now      func() time.Time
}

func NewUseCase(
	expenses repository.EmployeeExpenseRepository,
	cash repository.CashMovementRepository,
	catalog repository.CatalogRepository,
	log *logger.Logger,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{expenses: expenses, cash: cash, catalog: catalog, log: log, now: time.Now}
}

// List lista los gastos de la empresa, más recientes primero.
func (uc *UseCase) List(ctx context.Context, companyID string) ([]dto.ExpenseResponse, error) {
	list, err := uc.expenses.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toExpenseResponse(e, false))
	}
	return out, nil
}

// Add guarda el gasto y, si el tipo es adelanto, sueldo u otros y vienen lote y cuenta
// de tesorería, registra un egreso de caja por el mismo monto.
func (uc *UseCase) Add(ctx context.Context, companyID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if !in.Monto.IsPositive() {
		verr := domain.NewValidationError()
		verr.Add("monto", "El monto debe ser mayor a 0")
		return nil, verr
	}

	tipos, err := uc.catalog.ListTiposGasto(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar tipos de gasto: %w", err)
	}
	tipo, ok := findTipo(tipos, in.FkTipoGasto)
	if !ok {
		verr := domain.NewValidationError()
		verr.Add("fk_tipo_gasto", "Tipo de gasto inválido")
		return nil, verr
	}

	fecha := uc.now()
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	e := &entity.EmployeeExpense{
		CompanyID:         companyID,
		FkEmpleado:        in.FkEmpleado,
		FkTipoGasto:       in.FkTipoGasto,
		Monto:             in.Monto,
		Descripcion:       in.Descripcion,
		Fecha:             fecha,
		FkLoteOperaciones: in.FkLoteOperaciones,
		FkCuentaTesoreria: in.FkCuentaTesoreria,
	}
	if err := uc.expenses.Create(ctx, e); err != nil {
		return nil, err
	}

	if !cashOutflowTypes[tipo.Descripcion] || e.FkLoteOperaciones == nil || e.FkCuentaTesoreria == nil {
		return toExpenseResponse(e, false), nil
	}

	mov := &entity.CashMovement{
		CompanyID:           companyID,
		FkIDLote:            *e.FkLoteOperaciones,
		FkIDCuentaTesoreria: *e.FkCuentaTesoreria,
		Tipo:                entity.CashTipoEgreso,
		Monto:               e.Monto,
	}
	if err := uc.cash.Record(context.WithoutCancel(ctx), mov); err != nil {
		uc.log.Error().Err(err).
			Int64("expense_id", e.ID).
			Int64("lote_id", mov.FkIDLote).
			Msg("egreso de caja falló; el gasto quedó guardado")
		return nil, &LedgerError{Expense: toExpenseResponse(e, false), Err: err}
	}
	return toExpenseResponse(e, true), nil
}

func findTipo(list []entity.TipoGasto, id int64) (entity.TipoGasto, bool) {
	for _, t := range list {
		if t.ID == id {
			return t, true
		}
	}
	return entity.TipoGasto{}, false
}

func toExpenseResponse(e *entity.EmployeeExpense, cash bool) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:                e.ID,
		FkEmpleado:        e.FkEmpleado,
		FkTipoGasto:       e.FkTipoGasto,
		Monto:             e.Monto,
		Descripcion:       e.Descripcion,
		Fecha:             e.Fecha,
		FkLoteOperaciones: e.FkLoteOperaciones,
		FkCuentaTesoreria: e.FkCuentaTesoreria,
		CashRegistered:    cash,
	}
}
