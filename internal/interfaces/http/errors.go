package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/faro-api/internal/application/articles"
	"github.com/jhoicas/faro-api/internal/application/dto"
	"github.com/jhoicas/faro-api/internal/application/expenses"
	"github.com/jhoicas/faro-api/internal/domain"
)

const msgConnection = "Error de conexión con el servidor. Verifica tu conexión e intenta de nuevo."

// writeError traduce un error de los casos de uso al cuerpo dto.ErrorResponse y su status.
func writeError(c *fiber.Ctx, err error) error {
	var (
		serr *articles.SubmitError
		lerr *expenses.LedgerError
	)
	switch {
	case errors.As(err, &serr):
		status, body := classify(serr.Err)
		if status == fiber.StatusInternalServerError {
			status = fiber.StatusServiceUnavailable
			body = dto.ErrorResponse{Code: "PERSIST_FAILED", Message: msgConnection}
			if serr.Stage == articles.StageMovement {
				body.Code = "MOVEMENT_FAILED"
			}
		}
		body.RecordedMovements = articles.MovementResponses(serr.Recorded)
		return c.Status(status).JSON(body)
	case errors.As(err, &lerr):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code:    "LEDGER_FAILED",
			Message: "El gasto se guardó pero no se pudo registrar el egreso de caja",
			Expense: lerr.Expense,
		})
	}
	status, body := classify(err)
	return c.Status(status).JSON(body)
}

func classify(err error) (int, dto.ErrorResponse) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "VALIDATION", Message: "hay campos inválidos", Fields: verr.Fields}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrTrialExpired):
		return fiber.StatusPaymentRequired, dto.ErrorResponse{Code: "TRIAL_EXPIRED", Message: "La prueba gratis ha finalizado. Suscríbete para seguir guardando cambios."}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()}
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
	}
}
