package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/faro-api/internal/application/dto"
	"github.com/jhoicas/faro-api/internal/application/expenses"
)

// ExpenseHandler maneja los gastos de empleados (protegido, solo admin).
type ExpenseHandler struct {
	uc *expenses.UseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *expenses.UseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// List godoc
// @Summary      Listar gastos de empleados
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ExpenseResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/gastos-empleados [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar gasto de empleado
// @Description  Guarda el gasto y, si el tipo es adelanto, sueldo u otros y vienen lote y cuenta
// @Description  de tesorería, registra el egreso de caja. Si el egreso falla el gasto queda guardado (503 LEDGER_FAILED).
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "Gasto"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/gastos-empleados [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateExpenseRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.Add(c.UserContext(), GetCompanyID(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
