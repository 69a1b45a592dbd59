package supabase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"brandstudio-backend/internal/supabase"
)

func TestStorageClient_GetPublicURL(t *testing.T) {
	client, err := supabase.NewStorageClient("https://example.supabase.co", "test-key", "brand-assets")
	assert.NoError(t, err)

	url := client.GetPublicURL("users/u1/sessions/session_1_abc/123_abcdefg.png")
	assert.Equal(t,
		"https://example.supabase.co/storage/v1/object/public/brand-assets/users/u1/sessions/session_1_abc/123_abcdefg.png",
		url)
}

func TestStorageClient_GetPublicURL_TrailingSlash(t *testing.T) {
	client, err := supabase.NewStorageClient("https://example.supabase.co/", "test-key", "brand-assets")
	assert.NoError(t, err)

	url := client.GetPublicURL("users/u1/sessions/s1/a.png")
	assert.Equal(t,
		"https://example.supabase.co/storage/v1/object/public/brand-assets/users/u1/sessions/s1/a.png",
		url)
}
