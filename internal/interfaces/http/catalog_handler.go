package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/faro-api/internal/application/usecase"
)

// CatalogHandler expone las listas de referencia de solo lectura.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Agrupadores godoc
// @Summary      Listar agrupadores
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CatalogItem
// @Router       /api/agrupadores [get]
func (h *CatalogHandler) Agrupadores(c *fiber.Ctx) error {
	out, err := h.uc.Agrupadores(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Marcas godoc
// @Summary      Listar marcas
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CatalogItem
// @Router       /api/marcas [get]
func (h *CatalogHandler) Marcas(c *fiber.Ctx) error {
	out, err := h.uc.Marcas(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TiposGasto godoc
// @Summary      Listar tipos de gasto
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CatalogItem
// @Router       /api/tipos-gasto [get]
func (h *CatalogHandler) TiposGasto(c *fiber.Ctx) error {
	out, err := h.uc.TiposGasto(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
