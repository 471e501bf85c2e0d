package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/faro-api/internal/domain"
	"github.com/jhoicas/faro-api/internal/domain/entity"
	"github.com/jhoicas/faro-api/internal/domain/repository"
)

var _ repository.EmployeeExpenseRepository = (*EmployeeExpenseRepo)(nil)

// EmployeeExpenseRepo implementación del puerto EmployeeExpenseRepository sobre PostgreSQL.
type EmployeeExpenseRepo struct {
	q Querier
}

func NewEmployeeExpenseRepository(q Querier) *EmployeeExpenseRepo {
	return &EmployeeExpenseRepo{q: q}
}

// Create persiste un gasto y completa ID y fecha de alta.
func (r *EmployeeExpenseRepo) Create(ctx context.Context, e *entity.EmployeeExpense) error {
	query := `
		INSERT INTO gastos_empleados (company_id, fk_empleado, fk_tipo_gasto, monto, descripcion, fecha,
			fk_lote_operaciones, fk_cuenta_tesoreria)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		e.CompanyID, e.FkEmpleado, e.FkTipoGasto, e.Monto, e.Descripcion, e.Fecha,
		e.FkLoteOperaciones, e.FkCuentaTesoreria,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert gasto_empleado: referencia inexistente: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert gasto_empleado: %w", err)
	}
	return nil
}

// ListByCompany lista los gastos de la empresa, más recientes primero.
func (r *EmployeeExpenseRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.EmployeeExpense, error) {
	query := `
		SELECT id, company_id, fk_empleado, fk_tipo_gasto, monto, descripcion, fecha,
			fk_lote_operaciones, fk_cuenta_tesoreria, created_at
		FROM gastos_empleados WHERE company_id = $1
		ORDER BY fecha DESC, id DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list gastos_empleados: %w", err)
	}
	defer rows.Close()

	var list []*entity.EmployeeExpense
	for rows.Next() {
		var e entity.EmployeeExpense
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.FkEmpleado, &e.FkTipoGasto, &e.Monto, &e.Descripcion, &e.Fecha,
			&e.FkLoteOperaciones, &e.FkCuentaTesoreria, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan gasto_empleado: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
