package cache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"brandstudio-backend/internal/cache"
	"brandstudio-backend/internal/models"
)

// A nil cache must behave as a disabled cache, not panic.
func TestHistoryCache_NilSafe(t *testing.T) {
	var c *cache.HistoryCache
	ctx := context.Background()

	messages, ok, err := c.GetHistory(ctx, "session_1_abc")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, messages)

	assert.NoError(t, c.SetHistory(ctx, "session_1_abc", []models.ChatMessage{}))
	assert.NoError(t, c.DeleteHistory(ctx, "session_1_abc"))
	assert.Error(t, c.Ping(ctx))
}
