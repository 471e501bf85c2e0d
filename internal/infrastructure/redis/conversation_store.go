package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/faro-api/internal/application/assistant"
	"github.com/jhoicas/faro-api/internal/domain/entity"
)

var _ assistant.ConversationStore = (*ConversationStore)(nil)

const conversationPrefix = "faro:assistant:conversation:"

// ConversationStore historial del asistente en una lista Redis por usuario.
// Cada escritura renueva el TTL; la lista se recorta a los últimos limit mensajes.
type ConversationStore struct {
	rdb   *goredis.Client
	ttl   time.Duration
	limit int64
}

func NewConversationStore(rdb *goredis.Client, ttl time.Duration, limit int) *ConversationStore {
	if limit <= 0 {
		limit = 200
	}
	return &ConversationStore{rdb: rdb, ttl: ttl, limit: int64(limit)}
}

func (s *ConversationStore) Append(ctx context.Context, userID string, msg entity.ChatMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("redis: serializar mensaje: %w", err)
	}
	key := conversationPrefix + userID
	_, err = s.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.RPush(ctx, key, data)
		p.LTrim(ctx, key, -s.limit, -1)
		if s.ttl > 0 {
			p.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis: append conversación: %w", err)
	}
	return nil
}

func (s *ConversationStore) History(ctx context.Context, userID string) ([]entity.ChatMessage, error) {
	raw, err := s.rdb.LRange(ctx, conversationPrefix+userID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: leer conversación: %w", err)
	}
	out := make([]entity.ChatMessage, 0, len(raw))
	for _, r := range raw {
		var m entity.ChatMessage
		if err := json.Unmarshal([]byte(r), &m); err != nil {
			return nil, fmt.Errorf("redis: mensaje corrupto: %w", err)
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *ConversationStore) Clear(ctx context.Context, userID string) error {
	if err := s.rdb.Del(ctx, conversationPrefix+userID).Err(); err != nil {
		return fmt.Errorf("redis: borrar conversación: %w", err)
	}
	return nil
}
