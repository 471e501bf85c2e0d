package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/faro-api/internal/application/ports"
	"github.com/jhoicas/faro-api/internal/domain"
)

// Verificar en tiempo de compilación que WebhookClient implementa AssistantWebhook.
var _ ports.AssistantWebhook = (*WebhookClient)(nil)

// maxReplyBytes límite de lectura de la respuesta del flujo.
const maxReplyBytes = 256 * 1024

// WebhookClient adaptador que envía los mensajes del asistente al webhook del flujo de
// automatización. Usa net/http de la librería estándar.
type WebhookClient struct {
	url        string
	httpClient *http.Client
}

// NewWebhookClient construye el adaptador. Con url vacía cada envío devuelve
// domain.ErrWebhookNotConfigured en lugar de fallar al arrancar.
func NewWebhookClient(url string) *WebhookClient {
	return &WebhookClient{
		url: url,
		httpClient: &http.Client{
			// Timeout de red; el use case impone además un context.WithTimeout.
			Timeout: 60 * time.Second,
		},
	}
}

// Send hace POST JSON del payload y devuelve el cuerpo de la respuesta.
// Una respuesta no 2xx se devuelve como *ports.WebhookStatusError.
func (c *WebhookClient) Send(ctx context.Context, payload ports.WebhookPayload) ([]byte, error) {
	if c.url == "" {
		return nil, domain.ErrWebhookNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("webhook: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("webhook: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("webhook: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("webhook: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxReplyBytes))
		return nil, &ports.WebhookStatusError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return nil, fmt.Errorf("webhook: leer respuesta: %w", err)
	}
	return raw, nil
}
