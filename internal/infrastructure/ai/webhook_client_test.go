package ai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/faro-api/internal/application/ports"
	"github.com/jhoicas/faro-api/internal/domain"
	"github.com/jhoicas/faro-api/internal/infrastructure/ai"
)

func TestWebhookClient_EnviaPayloadYDevuelveCuerpo(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"output":"hola"}`))
	}))
	defer srv.Close()

	c := ai.NewWebhookClient(srv.URL)
	body, err := c.Send(context.Background(), ports.WebhookPayload{
		Message: "¿stock de remeras?", MessageID: "m1", SessionID: "1700000000000",
		Timestamp: "2025-01-01T00:00:00.000Z", UserAgent: "ua", Language: "es",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"output":"hola"}`, string(body))

	assert.Equal(t, "¿stock de remeras?", got["message"])
	assert.Equal(t, "m1", got["messageId"])
	assert.Equal(t, "1700000000000", got["sessionId"])
	assert.Equal(t, "ua", got["userAgent"])
	assert.Equal(t, "es", got["language"])
}

func TestWebhookClient_StatusNoExitoso(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := ai.NewWebhookClient(srv.URL).Send(context.Background(), ports.WebhookPayload{Message: "x"})

	var serr *ports.WebhookStatusError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, http.StatusBadGateway, serr.StatusCode)
}

func TestWebhookClient_SinURL(t *testing.T) {
	_, err := ai.NewWebhookClient("").Send(context.Background(), ports.WebhookPayload{Message: "x"})
	assert.ErrorIs(t, err, domain.ErrWebhookNotConfigured)
}
