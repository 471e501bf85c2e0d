package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/faro-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para la empresa del usuario.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Current godoc
// @Summary      Empresa actual y estado de la prueba gratis
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company [get]
func (h *CompanyHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.Current(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
