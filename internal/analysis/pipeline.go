package analysis

import (
	"context"
	"errors"
	"fmt"

	"brandstudio-backend/internal/llm"
	"brandstudio-backend/internal/models"
	"brandstudio-backend/internal/supabase"
)

// ErrModelFailed marks a failed model invocation so the transport layer
// can report it as an upstream error rather than a local one.
var ErrModelFailed = errors.New("model invocation failed")

// Pipeline turns a session's uploaded assets into a persisted brand
// analysis. Runs are synchronous: the handler blocks until the model
// responds or the call fails.
type Pipeline struct {
	dbClient       *supabase.DatabaseClient
	llmClient      *llm.Client
	realtimeClient *supabase.RealtimeClient
}

func NewPipeline(
	dbClient *supabase.DatabaseClient,
	llmClient *llm.Client,
	realtimeClient *supabase.RealtimeClient,
) *Pipeline {
	return &Pipeline{
		dbClient:       dbClient,
		llmClient:      llmClient,
		realtimeClient: realtimeClient,
	}
}

// Run analyzes every asset registered for the session and stores the
// resulting profile on the session record, advancing it to the chat
// step. A failed model call leaves the session untouched so the run
// can be retried. Re-running overwrites the previous analysis. Returns
// the updated session and the number of files sent to the model.
func (p *Pipeline) Run(ctx context.Context, sessionID string) (*models.UserSession, int, error) {
	session, err := p.dbClient.GetSessionBySessionID(sessionID)
	if err != nil {
		return nil, 0, err
	}

	assets, err := p.dbClient.ListAssets(sessionID, "")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load session assets: %w", err)
	}

	fileURLs := make([]string, 0, len(assets))
	for _, asset := range assets {
		fileURLs = append(fileURLs, asset.FileURL)
	}

	if p.realtimeClient != nil {
		_ = p.realtimeClient.PublishSessionEvent(sessionID, "analysis.started", supabase.AnalysisStartedPayload(sessionID, len(fileURLs)))
	}

	var report string
	invokeErr := p.llmClient.RetryWithBackoff(func() error {
		var err error
		report, err = p.llmClient.Invoke(ctx, llm.InvokeRequest{
			Prompt:   BuildPrompt(fileURLs),
			FileURLs: fileURLs,
		})
		return err
	}, 3)
	if invokeErr != nil {
		if p.realtimeClient != nil {
			_ = p.realtimeClient.PublishSessionEvent(sessionID, "analysis.failed", supabase.AnalysisFailedPayload(sessionID, invokeErr.Error()))
		}
		return nil, 0, fmt.Errorf("%w: %v", ErrModelFailed, invokeErr)
	}

	updated, err := p.dbClient.SetBrandAnalysis(session.SessionID, report)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to store brand analysis: %w", err)
	}

	if p.realtimeClient != nil {
		_ = p.realtimeClient.PublishSessionEvent(sessionID, "analysis.completed", supabase.AnalysisCompletedPayload(sessionID))
	}

	return updated, len(fileURLs), nil
}
