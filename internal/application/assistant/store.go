package assistant

import (
	"context"
	"sync"

	"github.com/jhoicas/faro-api/internal/domain/entity"
)

// ConversationStore guarda el historial de conversación de cada usuario.
type ConversationStore interface {
	Append(ctx context.Context, userID string, msg entity.ChatMessage) error
	History(ctx context.Context, userID string) ([]entity.ChatMessage, error)
	Clear(ctx context.Context, userID string) error
}

// MemoryStore historial en memoria del proceso; se pierde al reiniciar.
// Conserva como máximo limit mensajes por usuario (los más recientes).
type MemoryStore struct {
	mu    sync.RWMutex
	limit int
	data  map[string][]entity.ChatMessage
}

var _ ConversationStore = (*MemoryStore)(nil)

func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = 200
	}
	return &MemoryStore{limit: limit, data: make(map[string][]entity.ChatMessage)}
}

func (s *MemoryStore) Append(_ context.Context, userID string, msg entity.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := append(s.data[userID], msg)
	if len(list) > s.limit {
		list = list[len(list)-s.limit:]
	}
	s.data[userID] = list
	return nil
}

func (s *MemoryStore) History(_ context.Context, userID string) ([]entity.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.ChatMessage(nil), s.data[userID]...), nil
}

func (s *MemoryStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
	return nil
}
