package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"reservabot/models"
)

// ConversationStore keeps the last interpretation per phone number, so a
// follow-up message ("amanhã então") can fill the slots the first message
// left missing.
type ConversationStore interface {
	// Load returns the pending interpretation for a phone, nil when none.
	Load(ctx context.Context, phone string) (*models.InterpretedRequest, error)
	// Save stores a pending interpretation with a TTL.
	Save(ctx context.Context, phone string, req *models.InterpretedRequest) error
	// Clear drops the pending interpretation.
	Clear(ctx context.Context, phone string) error
}

// RedisConversationStore implements ConversationStore on Redis.
type RedisConversationStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisConversationStore creates a store with the given TTL.
func NewRedisConversationStore(client *redis.Client, ttl time.Duration) *RedisConversationStore {
	return &RedisConversationStore{client: client, ttl: ttl}
}

func conversationKey(phone string) string {
	return "conv:" + phone
}

// Load returns the pending interpretation for a phone, nil when none.
func (s *RedisConversationStore) Load(ctx context.Context, phone string) (*models.InterpretedRequest, error) {
	data, err := s.client.Get(ctx, conversationKey(phone)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation state: %w", err)
	}

	var req models.InterpretedRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to decode conversation state: %w", err)
	}
	return &req, nil
}

// Save stores a pending interpretation with the configured TTL.
func (s *RedisConversationStore) Save(ctx context.Context, phone string, req *models.InterpretedRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode conversation state: %w", err)
	}
	if err := s.client.Set(ctx, conversationKey(phone), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save conversation state: %w", err)
	}
	return nil
}

// Clear drops the pending interpretation.
func (s *RedisConversationStore) Clear(ctx context.Context, phone string) error {
	if err := s.client.Del(ctx, conversationKey(phone)).Err(); err != nil {
		return fmt.Errorf("failed to clear conversation state: %w", err)
	}
	return nil
}
