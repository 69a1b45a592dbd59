package chat_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"brandstudio-backend/internal/agents"
	"brandstudio-backend/internal/chat"
	"brandstudio-backend/internal/llm"
	"brandstudio-backend/internal/models"
	"brandstudio-backend/internal/supabase"
)

// fakeMessageStore keeps threads in memory, newest first, the same order
// the database layer returns them.
type fakeMessageStore struct {
	threads  map[string][]models.ChatMessage
	sessions map[string]*models.UserSession
	creates  int
}

func newFakeMessageStore() *fakeMessageStore {
	return &fakeMessageStore{
		threads:  make(map[string][]models.ChatMessage),
		sessions: make(map[string]*models.UserSession),
	}
}

func (f *fakeMessageStore) CreateMessage(message *models.ChatMessage) error {
	f.creates++
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	message.CreatedAt = time.Now()
	f.threads[message.SessionID] = append([]models.ChatMessage{*message}, f.threads[message.SessionID]...)
	return nil
}

func (f *fakeMessageStore) ListMessages(chatID string) ([]models.ChatMessage, error) {
	out := make([]models.ChatMessage, len(f.threads[chatID]))
	copy(out, f.threads[chatID])
	return out, nil
}

func (f *fakeMessageStore) GetSessionBySessionID(sessionID string) (*models.UserSession, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, supabase.ErrSessionNotFound
	}
	return session, nil
}

func llmServer(t *testing.T, status int, reply string, captured *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Content interface{} `json:"content"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if captured != nil && len(body.Messages) > 0 {
			raw, _ := json.Marshal(body.Messages[0].Content)
			*captured = string(raw)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": reply}},
			},
		})
	}))
}

func TestHistory_SeedsWelcomeExactlyOnce(t *testing.T) {
	store := newFakeMessageStore()
	service := chat.NewService(store, nil, nil, nil)
	agent, _ := agents.ByKey("graphic")

	chatID, messages, err := service.History(context.Background(), agent, "session_1_abcdefghi")
	assert.NoError(t, err)
	assert.Equal(t, "session_1_abcdefghi", chatID)
	assert.Len(t, messages, 1)
	assert.Equal(t, "ai", messages[0].Sender)
	assert.Equal(t, 1, store.creates)

	// A second read must not seed a second welcome.
	_, again, err := service.History(context.Background(), agent, "session_1_abcdefghi")
	assert.NoError(t, err)
	assert.Len(t, again, 1)
	assert.Equal(t, 1, store.creates)
	assert.Equal(t, messages[0].ID, again[0].ID)
}

func TestHistory_ReturnsChronologicalOrder(t *testing.T) {
	store := newFakeMessageStore()
	agent, _ := agents.ByKey("social")
	chatID := agent.ChatID("session_2_abcdefghi")
	now := time.Now()
	store.threads[chatID] = []models.ChatMessage{
		{ID: uuid.New(), SessionID: chatID, Message: "troisième", Sender: "user", MessageType: "text", CreatedAt: now},
		{ID: uuid.New(), SessionID: chatID, Message: "deuxième", Sender: "ai", MessageType: "text", CreatedAt: now.Add(-time.Minute)},
		{ID: uuid.New(), SessionID: chatID, Message: "première", Sender: "ai", MessageType: "text", CreatedAt: now.Add(-2 * time.Minute)},
	}

	service := chat.NewService(store, nil, nil, nil)
	_, messages, err := service.History(context.Background(), agent, "session_2_abcdefghi")
	assert.NoError(t, err)
	assert.Len(t, messages, 3)
	assert.Equal(t, "première", messages[0].Message)
	assert.Equal(t, "deuxième", messages[1].Message)
	assert.Equal(t, "troisième", messages[2].Message)
	// A non-empty thread never gets a welcome seeded.
	assert.Equal(t, 0, store.creates)
}

func TestSendText_UserMessageSurvivesModelFailure(t *testing.T) {
	server := llmServer(t, http.StatusInternalServerError, "", nil)
	defer server.Close()

	store := newFakeMessageStore()
	service := chat.NewService(store, nil, llm.NewClient(server.URL, "test-key", "test-model"), nil)
	agent, _ := agents.ByKey("graphic")

	chatID, userMsg, aiMsg, err := service.SendText(context.Background(), agent, "", "Bonjour")
	assert.Error(t, err)
	assert.Equal(t, "generic_session", chatID)
	assert.Nil(t, aiMsg)
	if assert.NotNil(t, userMsg) {
		assert.Equal(t, "Bonjour", userMsg.Message)
	}
	thread := store.threads["generic_session"]
	assert.Len(t, thread, 1)
	assert.Equal(t, "user", thread[0].Sender)
}

func TestSendText_EmbedsBrandAnalysisInPrompt(t *testing.T) {
	var captured string
	server := llmServer(t, http.StatusOK, "Voici ma réponse", &captured)
	defer server.Close()

	store := newFakeMessageStore()
	store.sessions["session_9_abcdefghi"] = &models.UserSession{
		SessionID:     "session_9_abcdefghi",
		BrandAnalysis: sql.NullString{String: "Palette bleu nuit et typographie serif.", Valid: true},
	}
	service := chat.NewService(store, nil, llm.NewClient(server.URL, "test-key", "test-model"), nil)
	agent, _ := agents.ByKey("graphic")

	chatID, userMsg, aiMsg, err := service.SendText(context.Background(), agent, "session_9_abcdefghi", "Un flyer ?")
	assert.NoError(t, err)
	assert.Equal(t, "session_9_abcdefghi", chatID)
	assert.Equal(t, "user", userMsg.Sender)
	if assert.NotNil(t, aiMsg) {
		assert.Equal(t, "Voici ma réponse", aiMsg.Message)
		assert.Equal(t, "ai", aiMsg.Sender)
	}
	assert.Contains(t, captured, "Palette bleu nuit et typographie serif.")
	assert.Len(t, store.threads["session_9_abcdefghi"], 2)
}
