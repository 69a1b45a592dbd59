package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"brandstudio-backend/internal/models"
)

// HistoryCache is a read-through cache for chat threads keyed by chat
// identifier. A nil *HistoryCache is valid and disables caching, so
// callers never have to branch on whether Redis is configured.
type HistoryCache struct {
	client     *redisv9.Client
	historyTTL time.Duration
}

func NewHistoryCache(client *redisv9.Client, historyTTL time.Duration) *HistoryCache {
	if historyTTL <= 0 {
		historyTTL = 60 * time.Second
	}
	return &HistoryCache{
		client:     client,
		historyTTL: historyTTL,
	}
}

func (c *HistoryCache) GetHistory(ctx context.Context, chatID string) ([]models.ChatMessage, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	raw, err := c.client.Get(ctx, historyKey(chatID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get history failed: %w", err)
	}

	var messages []models.ChatMessage
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached history failed: %w", err)
	}
	return messages, true, nil
}

func (c *HistoryCache) SetHistory(ctx context.Context, chatID string, messages []models.ChatMessage) error {
	if c == nil {
		return nil
	}
	payload, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("marshal history cache failed: %w", err)
	}
	if err := c.client.Set(ctx, historyKey(chatID), payload, c.historyTTL).Err(); err != nil {
		return fmt.Errorf("redis set history failed: %w", err)
	}
	return nil
}

// DeleteHistory invalidates a thread after a write so the next read
// reloads from the database.
func (c *HistoryCache) DeleteHistory(ctx context.Context, chatID string) error {
	if c == nil {
		return nil
	}
	if err := c.client.Del(ctx, historyKey(chatID)).Err(); err != nil {
		return fmt.Errorf("redis delete history failed: %w", err)
	}
	return nil
}

func (c *HistoryCache) Ping(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("cache not configured")
	}
	return c.client.Ping(ctx).Err()
}

func historyKey(chatID string) string {
	return fmt.Sprintf("chat:history:%s", chatID)
}
