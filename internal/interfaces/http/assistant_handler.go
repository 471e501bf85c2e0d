package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/faro-api/internal/application/assistant"
	"github.com/jhoicas/faro-api/internal/application/dto"
)

// AssistantHandler expone el chat con el asistente de IA.
// Las fallas del webhook llegan como mensaje del asistente, no como error HTTP.
type AssistantHandler struct {
	uc *assistant.UseCase
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *assistant.UseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// Send godoc
// @Summary      Enviar mensaje al asistente
// @Tags         assistant
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendMessageRequest  true  "Mensaje"
// @Success      200   {object}  dto.ChatMessageResponse
// @Failure      409   {object}  dto.ErrorResponse  "ya hay un mensaje en curso"
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/assistant/messages [post]
func (h *AssistantHandler) Send(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.SendMessage(c.UserContext(), assistant.SendInput{
		UserID:    GetUserID(c),
		Text:      req.Message,
		UserAgent: c.Get(fiber.HeaderUserAgent),
		Language:  c.Get(fiber.HeaderAcceptLanguage),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de la conversación
// @Tags         assistant
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ConversationResponse
// @Router       /api/assistant/messages [get]
func (h *AssistantHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Limpiar la conversación
// @Tags         assistant
// @Security     Bearer
// @Success      204
// @Router       /api/assistant/messages [delete]
func (h *AssistantHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.UserContext(), GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Suggestions godoc
// @Summary      Sugerencias para iniciar la conversación
// @Tags         assistant
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SuggestionResponse
// @Router       /api/assistant/suggestions [get]
func (h *AssistantHandler) Suggestions(c *fiber.Ctx) error {
	return c.JSON(h.uc.Suggestions())
}
