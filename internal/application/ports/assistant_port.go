package ports

import (
	"context"
	"fmt"
)

// WebhookPayload cuerpo JSON que recibe el flujo de automatización del asistente.
type WebhookPayload struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	MessageID string `json:"messageId"`
	SessionID string `json:"sessionId"`
	UserAgent string `json:"userAgent"`
	Language  string `json:"language"`
}

// AssistantWebhook define el puerto de salida hacia el flujo externo del asistente IA.
// Devuelve el cuerpo crudo de la respuesta; interpretar su forma es responsabilidad del caso de uso.
// Sin URL configurada debe devolver domain.ErrWebhookNotConfigured.
type AssistantWebhook interface {
	Send(ctx context.Context, payload WebhookPayload) ([]byte, error)
}

// WebhookStatusError respuesta HTTP no exitosa del webhook.
type WebhookStatusError struct {
	StatusCode int
	Status     string
}

func (e *WebhookStatusError) Error() string {
	return fmt.Sprintf("webhook: HTTP %d %s", e.StatusCode, e.Status)
}
