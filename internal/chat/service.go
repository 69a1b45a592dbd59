package chat

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"brandstudio-backend/internal/agents"
	"brandstudio-backend/internal/cache"
	"brandstudio-backend/internal/llm"
	"brandstudio-backend/internal/models"
	"brandstudio-backend/internal/supabase"
)

// MessageStore is the slice of the database client the conversation loop
// needs. *supabase.DatabaseClient is the production implementation.
type MessageStore interface {
	CreateMessage(message *models.ChatMessage) error
	ListMessages(chatID string) ([]models.ChatMessage, error)
	GetSessionBySessionID(sessionID string) (*models.UserSession, error)
}

// ImageUploader pushes chat images to object storage and returns the
// storage path and public URL.
type ImageUploader interface {
	UploadAsset(userID uuid.NullUUID, sessionID, filename, contentType string, data []byte) (string, string, error)
}

// Service runs the conversation loop shared by all four agents. Thread
// selection, welcome seeding and prompt assembly differ per agent and
// come from the agents registry; persistence and model calls are common.
type Service struct {
	dbClient      MessageStore
	storageClient ImageUploader
	llmClient     *llm.Client
	historyCache  *cache.HistoryCache
}

func NewService(
	dbClient MessageStore,
	storageClient ImageUploader,
	llmClient *llm.Client,
	historyCache *cache.HistoryCache,
) *Service {
	return &Service{
		dbClient:      dbClient,
		storageClient: storageClient,
		llmClient:     llmClient,
		historyCache:  historyCache,
	}
}

// History returns the thread for an agent and base session identifier in
// chronological order. An empty thread is seeded with the agent's welcome
// message, which is persisted so it is sent exactly once per thread.
func (s *Service) History(ctx context.Context, agent agents.Agent, sessionID string) (string, []models.ChatMessage, error) {
	chatID := agent.ChatID(sessionID)

	if cached, ok, err := s.historyCache.GetHistory(ctx, chatID); err == nil && ok {
		return chatID, cached, nil
	}

	messages, err := s.dbClient.ListMessages(chatID)
	if err != nil {
		return chatID, nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	// Stored newest-first; flip to chronological for display.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	if len(messages) == 0 {
		welcome := &models.ChatMessage{
			SessionID:   chatID,
			Message:     agent.WelcomeMessage(sessionID != ""),
			Sender:      "ai",
			MessageType: "text",
		}
		if err := s.dbClient.CreateMessage(welcome); err != nil {
			return chatID, nil, fmt.Errorf("failed to store welcome message: %w", err)
		}
		messages = append(messages, *welcome)
	}

	_ = s.historyCache.SetHistory(ctx, chatID, messages)

	return chatID, messages, nil
}

// SendText persists the user's message, asks the model for a reply and
// persists that too. The user message is durable before the model is
// called: when the model fails the returned user message is non-nil and
// the AI message is nil alongside the error.
func (s *Service) SendText(ctx context.Context, agent agents.Agent, sessionID, text string) (string, *models.ChatMessage, *models.ChatMessage, error) {
	chatID := agent.ChatID(sessionID)

	userMsg := &models.ChatMessage{
		SessionID:   chatID,
		Message:     text,
		Sender:      "user",
		MessageType: "text",
	}
	if err := s.dbClient.CreateMessage(userMsg); err != nil {
		return chatID, nil, nil, fmt.Errorf("failed to store user message: %w", err)
	}
	_ = s.historyCache.DeleteHistory(ctx, chatID)

	brandAnalysis, err := s.loadBrandAnalysis(sessionID)
	if err != nil {
		return chatID, userMsg, nil, err
	}

	reply, err := s.llmClient.Invoke(ctx, llm.InvokeRequest{
		Prompt: agent.TextPrompt(brandAnalysis, text),
	})
	if err != nil {
		return chatID, userMsg, nil, fmt.Errorf("model call failed: %w", err)
	}

	aiMsg, err := s.storeReply(ctx, chatID, reply)
	if err != nil {
		return chatID, userMsg, nil, err
	}
	return chatID, userMsg, aiMsg, nil
}

// SendImage uploads the image to object storage, persists it as a user
// message carrying the public URL, then asks the model for an audit of
// the image against the session's brand analysis.
func (s *Service) SendImage(ctx context.Context, agent agents.Agent, sessionID string, userID uuid.NullUUID, filename, contentType string, data []byte) (string, *models.ChatMessage, *models.ChatMessage, error) {
	chatID := agent.ChatID(sessionID)

	if s.storageClient == nil {
		return chatID, nil, nil, fmt.Errorf("storage not available")
	}

	_, publicURL, err := s.storageClient.UploadAsset(userID, chatID, filename, contentType, data)
	if err != nil {
		return chatID, nil, nil, fmt.Errorf("failed to upload image: %w", err)
	}

	userMsg := &models.ChatMessage{
		SessionID:   chatID,
		Message:     agent.ImageCaption,
		Sender:      "user",
		MessageType: "image",
		ImageURL:    sql.NullString{String: publicURL, Valid: true},
	}
	if err := s.dbClient.CreateMessage(userMsg); err != nil {
		return chatID, nil, nil, fmt.Errorf("failed to store image message: %w", err)
	}
	_ = s.historyCache.DeleteHistory(ctx, chatID)

	brandAnalysis, err := s.loadBrandAnalysis(sessionID)
	if err != nil {
		return chatID, userMsg, nil, err
	}

	reply, err := s.llmClient.Invoke(ctx, llm.InvokeRequest{
		Prompt:   agent.ImageAuditPrompt(brandAnalysis),
		FileURLs: []string{publicURL},
	})
	if err != nil {
		return chatID, userMsg, nil, fmt.Errorf("model call failed: %w", err)
	}

	aiMsg, err := s.storeReply(ctx, chatID, reply)
	if err != nil {
		return chatID, userMsg, nil, err
	}
	return chatID, userMsg, aiMsg, nil
}

func (s *Service) storeReply(ctx context.Context, chatID, reply string) (*models.ChatMessage, error) {
	aiMsg := &models.ChatMessage{
		SessionID:   chatID,
		Message:     reply,
		Sender:      "ai",
		MessageType: "text",
	}
	if err := s.dbClient.CreateMessage(aiMsg); err != nil {
		return nil, fmt.Errorf("failed to store ai message: %w", err)
	}
	_ = s.historyCache.DeleteHistory(ctx, chatID)
	return aiMsg, nil
}

// loadBrandAnalysis fetches the analysis for prompt enrichment. Generic
// threads and sessions without a stored analysis yield the empty string,
// which the prompt builders treat as the no-analysis arm.
func (s *Service) loadBrandAnalysis(sessionID string) (string, error) {
	if sessionID == "" {
		return "", nil
	}
	session, err := s.dbClient.GetSessionBySessionID(sessionID)
	if errors.Is(err, supabase.ErrSessionNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load brand analysis: %w", err)
	}
	if !session.BrandAnalysis.Valid {
		return "", nil
	}
	return session.BrandAnalysis.String, nil
}
