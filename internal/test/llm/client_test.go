package llm_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"brandstudio-backend/internal/llm"
)

func TestClient_Invoke_TextOnly(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Bonjour !"}}]}`))
	}))
	defer server.Close()

	client := llm.NewClient(server.URL, "test-key", "test-model")
	resp, err := client.Invoke(context.Background(), llm.InvokeRequest{Prompt: "Salut"})

	assert.NoError(t, err)
	assert.Equal(t, "Bonjour !", resp)

	// Text-only prompts go out as a plain string content.
	messages := captured["messages"].([]interface{})
	message := messages[0].(map[string]interface{})
	assert.Equal(t, "Salut", message["content"])
}

func TestClient_Invoke_WithFileURLs(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Audit terminé"}}]}`))
	}))
	defer server.Close()

	client := llm.NewClient(server.URL, "test-key", "test-model")
	resp, err := client.Invoke(context.Background(), llm.InvokeRequest{
		Prompt:   "Analyse cette image",
		FileURLs: []string{"https://cdn.example.com/logo.png"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Audit terminé", resp)

	messages := captured["messages"].([]interface{})
	message := messages[0].(map[string]interface{})
	parts := message["content"].([]interface{})
	assert.Len(t, parts, 2)

	textPart := parts[0].(map[string]interface{})
	assert.Equal(t, "text", textPart["type"])
	assert.Equal(t, "Analyse cette image", textPart["text"])

	imagePart := parts[1].(map[string]interface{})
	assert.Equal(t, "image_url", imagePart["type"])
	imageRef := imagePart["image_url"].(map[string]interface{})
	assert.Equal(t, "https://cdn.example.com/logo.png", imageRef["url"])
}

func TestClient_Invoke_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer server.Close()

	client := llm.NewClient(server.URL, "test-key", "test-model")
	_, err := client.Invoke(context.Background(), llm.InvokeRequest{Prompt: "Salut"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_Invoke_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := llm.NewClient(server.URL, "test-key", "test-model")
	_, err := client.Invoke(context.Background(), llm.InvokeRequest{Prompt: "Salut"})

	assert.Error(t, err)
}

func TestClient_RetryWithBackoff(t *testing.T) {
	client := llm.NewClient("https://api.test.com/v1/", "test-key", "test-model")

	callCount := 0
	err := client.RetryWithBackoff(func() error {
		callCount++
		if callCount < 3 {
			return assert.AnError
		}
		return nil
	}, 3)

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
}

func TestClient_RetryWithBackoff_Exhausted(t *testing.T) {
	client := llm.NewClient("https://api.test.com/v1/", "test-key", "test-model")

	err := client.RetryWithBackoff(func() error {
		return assert.AnError
	}, 3)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 3 retries")
}
