package assistant

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/faro-api/internal/application/dto"
	"github.com/jhoicas/faro-api/internal/application/ports"
	"github.com/jhoicas/faro-api/internal/domain"
	"github.com/jhoicas/faro-api/internal/domain/entity"
	"github.com/jhoicas/faro-api/pkg/logger"
)

// suggestions atajos que se ofrecen con la conversación vacía.
var suggestions = []dto.SuggestionResponse{
	{Title: "Imagen de Producto", Description: "Generar imágenes", Prompt: "Necesito una imagen de producto"},
	{Title: "Plan de Negocios", Description: "Estrategias y análisis", Prompt: "Ayúdame con un plan de negocios"},
	{Title: "Código de Producto", Description: "Generar códigos", Prompt: "Necesito un código de producto"},
}

// SendInput mensaje del usuario más los datos del cliente que se reenvían al flujo.
type SendInput struct {
	UserID    string
	Text      string
	UserAgent string
	Language  string
}

// UseCase conversación con el asistente IA. Reenvía cada mensaje al webhook del flujo y
// guarda ambos lados en el historial del usuario. Las fallas del flujo se devuelven como
// mensaje del asistente, no como error.
type UseCase struct {
	webhook ports.AssistantWebhook
	store   ConversationStore
	timeout time.Duration
	log     *logger.Logger
	now     func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewUseCase construye el caso de uso. timeout acota cada llamada al webhook (0 = 30 s).
func NewUseCase(webhook ports.AssistantWebhook, store ConversationStore, timeout time.Duration, log *logger.Logger) *UseCase {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		webhook:  webhook,
		store:    store,
		timeout:  timeout,
		log:      log,
		now:      time.Now,
		inFlight: make(map[string]struct{}),
	}
}

// SendMessage envía un mensaje y devuelve la respuesta del asistente.
// Rechaza texto vacío y un segundo mensaje del mismo usuario mientras el anterior sigue en curso.
func (uc *UseCase) SendMessage(ctx context.Context, in SendInput) (*dto.ChatMessageResponse, error) {
	if strings.TrimSpace(in.Text) == "" {
		verr := domain.NewValidationError()
		verr.Add("message", "El mensaje es requerido")
		return nil, verr
	}
	if !uc.acquire(in.UserID) {
		return nil, domain.ErrConflict
	}
	defer uc.release(in.UserID)

	userMsg := entity.ChatMessage{ID: uuid.NewString(), Text: in.Text, IsUser: true, Timestamp: uc.now()}
	if err := uc.store.Append(ctx, in.UserID, userMsg); err != nil {
		return nil, err
	}

	reply := uc.ask(ctx, in, userMsg)

	aiMsg := entity.ChatMessage{ID: uuid.NewString(), Text: reply, IsUser: false, Timestamp: uc.now()}
	if err := uc.store.Append(ctx, in.UserID, aiMsg); err != nil {
		return nil, err
	}
	out := toChatResponse(aiMsg)
	return &out, nil
}

// History devuelve la conversación del usuario en orden cronológico.
func (uc *UseCase) History(ctx context.Context, userID string) (*dto.ConversationResponse, error) {
	list, err := uc.store.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &dto.ConversationResponse{Messages: make([]dto.ChatMessageResponse, 0, len(list))}
	for _, m := range list {
		out.Messages = append(out.Messages, toChatResponse(m))
	}
	return out, nil
}

// Clear borra la conversación del usuario.
func (uc *UseCase) Clear(ctx context.Context, userID string) error {
	return uc.store.Clear(ctx, userID)
}

// Suggestions atajos de pregunta para la conversación vacía.
func (uc *UseCase) Suggestions() []dto.SuggestionResponse {
	return suggestions
}

// ask llama al webhook y traduce cualquier falla al mensaje que verá el usuario.
func (uc *UseCase) ask(ctx context.Context, in SendInput, msg entity.ChatMessage) string {
	if uc.webhook == nil {
		return replyForError(domain.ErrWebhookNotConfigured)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	body, err := uc.webhook.Send(ctx, ports.WebhookPayload{
		Message:   msg.Text,
		Timestamp: msg.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z"),
		MessageID: msg.ID,
		SessionID: strconv.FormatInt(uc.now().UnixMilli(), 10),
		UserAgent: in.UserAgent,
		Language:  in.Language,
	})
	if err == nil {
		var reply string
		reply, err = ExtractReply(body)
		if err == nil {
			return reply
		}
	}
	uc.log.Warn().Err(err).Str("user_id", in.UserID).Msg("asistente: webhook falló")
	return replyForError(err)
}

func replyForError(err error) string {
	var status *ports.WebhookStatusError
	switch {
	case errors.Is(err, domain.ErrWebhookNotConfigured):
		return MsgNotConfigured
	case errors.As(err, &status):
		return MsgConnection
	default:
		return MsgGeneric
	}
}

func (uc *UseCase) acquire(userID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, busy := uc.inFlight[userID]; busy {
		return false
	}
	uc.inFlight[userID] = struct{}{}
	return true
}

func (uc *UseCase) release(userID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inFlight, userID)
}

func toChatResponse(m entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{ID: m.ID, Text: m.Text, IsUser: m.IsUser, Timestamp: m.Timestamp}
}
