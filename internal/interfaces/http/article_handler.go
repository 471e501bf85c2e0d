package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/faro-api/internal/application/articles"
	"github.com/jhoicas/faro-api/internal/application/dto"
	"github.com/jhoicas/faro-api/pkg/logger"
)

// ArticleHandler maneja el formulario de artículos y sus movimientos de stock (protegido).
type ArticleHandler struct {
	uc  *articles.UseCase
	log *logger.Logger
}

// NewArticleHandler construye el handler.
func NewArticleHandler(uc *articles.UseCase, log *logger.Logger) *ArticleHandler {
	return &ArticleHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear artículo
// @Description  Modo creación: el stock es libre y no se registran movimientos.
// @Tags         articles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ArticleFormRequest  true  "Formulario del artículo"
// @Success      201   {object}  dto.ArticleSaveResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/articles [post]
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	return h.submit(c, nil, fiber.StatusCreated)
}

// Update godoc
// @Summary      Editar artículo con ajuste de stock
// @Description  stock = base_stock + stock_nuevo − stock_descontar. Registra un movimiento por cada
// @Description  campo de ajuste distinto de cero (primero stock_nuevo) y luego actualiza el artículo.
// @Description  No es atómico: si algo falla, recorded_movements lista lo ya registrado.
// @Tags         articles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id               path    int                     true   "ID del artículo"
// @Param        Idempotency-Key  header  string                  false  "Clave de sesión para reintentos sin duplicar movimientos"
// @Param        body             body    dto.ArticleFormRequest  true   "Formulario del artículo"
// @Success      200   {object}  dto.ArticleSaveResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/articles/{id} [put]
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	articleID := int64(id)
	return h.submit(c, &articleID, fiber.StatusOK)
}

func (h *ArticleHandler) submit(c *fiber.Ctx, id *int64, okStatus int) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.ArticleFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	out, err := h.uc.SubmitForm(c.UserContext(), articles.FormCommand{
		CompanyID:      companyID,
		UserID:         GetUserID(c),
		ArticleID:      id,
		IdempotencyKey: c.Get("Idempotency-Key"),
		Request:        in,
		OnTrialExpired: func() {
			h.log.Info().Str("company_id", companyID).Msg("envío bloqueado: prueba gratis vencida")
		},
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(okStatus).JSON(out)
}

// GetByID godoc
// @Summary      Obtener artículo
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del artículo"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articles/{id} [get]
func (h *ArticleHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.UserContext(), GetCompanyID(c), int64(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar artículos
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ArticleListResponse
// @Router       /api/articles [get]
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Movimientos de stock del artículo
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Param        id      path   int  true   "ID del artículo"
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}   dto.StockMovementResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/articles/{id}/movements [get]
func (h *ArticleHandler) Movements(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.Movements(c.UserContext(), GetCompanyID(c), int64(id), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MovementReport godoc
// @Summary      Reporte PDF de movimientos (kardex)
// @Tags         articles
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del artículo"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articles/{id}/movements/report [get]
func (h *ArticleHandler) MovementReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	pdf, filename, err := h.uc.MovementReport(c.UserContext(), GetCompanyID(c), int64(id))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
