package assistant_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/faro-api/internal/application/assistant"
	"github.com/jhoicas/faro-api/internal/application/ports"
	"github.com/jhoicas/faro-api/internal/domain"
	"github.com/jhoicas/faro-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del webhook
// ──────────────────────────────────────────────────────────────────────────────

type fakeWebhook struct {
	body    string
	err     error
	got     []ports.WebhookPayload
	block   chan struct{}
	started chan struct{}
}

func (f *fakeWebhook) Send(ctx context.Context, p ports.WebhookPayload) ([]byte, error) {
	f.got = append(f.got, p)
	if f.block != nil {
		close(f.started)
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.body), nil
}

func newAssistant(w ports.AssistantWebhook) *assistant.UseCase {
	return assistant.NewUseCase(w, assistant.NewMemoryStore(0), time.Second, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// SendMessage
// ──────────────────────────────────────────────────────────────────────────────

func TestSendMessage_GuardaAmbosLadosDeLaConversacion(t *testing.T) {
	w := &fakeWebhook{body: `[{"A output":"¡Hola! ¿En qué te ayudo?"}]`}
	uc := newAssistant(w)

	out, err := uc.SendMessage(context.Background(), assistant.SendInput{
		UserID: "u1", Text: "hola", UserAgent: "test-agent", Language: "es-AR",
	})
	require.NoError(t, err)
	assert.Equal(t, "¡Hola! ¿En qué te ayudo?", out.Text)
	assert.False(t, out.IsUser)

	require.Len(t, w.got, 1)
	p := w.got[0]
	assert.Equal(t, "hola", p.Message)
	assert.Equal(t, "test-agent", p.UserAgent)
	assert.Equal(t, "es-AR", p.Language)
	assert.NotEmpty(t, p.MessageID)
	assert.NotEmpty(t, p.SessionID)
	_, err = time.Parse(time.RFC3339, p.Timestamp)
	assert.NoError(t, err)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"messageId"`)

	hist, err := uc.History(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, hist.Messages, 2)
	assert.True(t, hist.Messages[0].IsUser)
	assert.Equal(t, p.MessageID, hist.Messages[0].ID)
	assert.False(t, hist.Messages[1].IsUser)
}

func TestSendMessage_TextoVacio_Validacion(t *testing.T) {
	w := &fakeWebhook{}
	uc := newAssistant(w)

	_, err := uc.SendMessage(context.Background(), assistant.SendInput{UserID: "u1", Text: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, w.got)
}

func TestSendMessage_ErroresSeDevuelvenComoMensaje(t *testing.T) {
	cases := []struct {
		name    string
		webhook ports.AssistantWebhook
		want    string
	}{
		{"sin webhook", nil, assistant.MsgNotConfigured},
		{"url no configurada", &fakeWebhook{err: domain.ErrWebhookNotConfigured}, assistant.MsgNotConfigured},
		{"HTTP 500", &fakeWebhook{err: &ports.WebhookStatusError{StatusCode: 500, Status: "Internal Server Error"}}, assistant.MsgConnection},
		{"red caída", &fakeWebhook{err: errors.New("dial tcp: connection refused")}, assistant.MsgGeneric},
		{"cuerpo no JSON", &fakeWebhook{body: "<html>"}, assistant.MsgGeneric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newAssistant(tc.webhook)
			out, err := uc.SendMessage(context.Background(), assistant.SendInput{UserID: "u1", Text: "hola"})
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.Text)
		})
	}
}

func TestSendMessage_SegundoMensajeEnCurso_Conflicto(t *testing.T) {
	w := &fakeWebhook{body: `{"output":"ok"}`, block: make(chan struct{}), started: make(chan struct{})}
	uc := newAssistant(w)

	done := make(chan error, 1)
	go func() {
		_, err := uc.SendMessage(context.Background(), assistant.SendInput{UserID: "u1", Text: "primero"})
		done <- err
	}()
	<-w.started

	_, err := uc.SendMessage(context.Background(), assistant.SendInput{UserID: "u1", Text: "segundo"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	close(w.block)
	require.NoError(t, <-done)
}

func TestHistory_AisladoPorUsuario(t *testing.T) {
	uc := newAssistant(&fakeWebhook{body: `{"output":"ok"}`})
	_, err := uc.SendMessage(context.Background(), assistant.SendInput{UserID: "u1", Text: "hola"})
	require.NoError(t, err)

	hist, err := uc.History(context.Background(), "u2")
	require.NoError(t, err)
	assert.Empty(t, hist.Messages)

	require.NoError(t, uc.Clear(context.Background(), "u1"))
	hist, err = uc.History(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, hist.Messages)
}

func TestMemoryStore_ConservaLosMasRecientes(t *testing.T) {
	uc := assistant.NewUseCase(&fakeWebhook{body: `"ok"`}, assistant.NewMemoryStore(3), time.Second, logger.Nop())
	for i := 0; i < 2; i++ {
		_, err := uc.SendMessage(context.Background(), assistant.SendInput{UserID: "u1", Text: "hola"})
		require.NoError(t, err)
	}
	hist, err := uc.History(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, hist.Messages, 3)
	assert.False(t, hist.Messages[0].IsUser, "se descarta el mensaje más antiguo")
}

func TestSuggestions(t *testing.T) {
	uc := newAssistant(nil)
	list := uc.Suggestions()
	require.Len(t, list, 3)
	assert.Equal(t, "Necesito una imagen de producto", list[0].Prompt)
}
