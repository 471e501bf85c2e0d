package repository

import (
	"context"

	"github.com/jhoicas/faro-api/internal/domain/entity"
)

// EmployeeExpenseRepository define el puerto de persistencia para gastos de empleados.
type EmployeeExpenseRepository interface {
	Create(ctx context.Context, expense *entity.EmployeeExpense) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.EmployeeExpense, error)
}
