package supabase

import (
	"fmt"

	"github.com/supabase-community/supabase-go"
)

type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	// Note: Supabase Go client doesn't have direct Realtime publish
	// We'll use database updates which trigger Realtime automatically
	// For explicit events, we can use the Realtime REST API if needed

	// For now, database updates will trigger Realtime automatically
	// This is a placeholder for future explicit event publishing
	return nil
}

func (r *RealtimeClient) PublishSessionEvent(sessionID string, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("session:%s", sessionID)
	return r.PublishEvent(channel, event, payload)
}

// Event payloads
func UploadStartedPayload(sessionID string, fileCount int) map[string]interface{} {
	return map[string]interface{}{
		"session_id": sessionID,
		"status":     "uploading",
		"file_count": fileCount,
	}
}

func UploadCompletedPayload(sessionID string, fileCount int) map[string]interface{} {
	return map[string]interface{}{
		"session_id": sessionID,
		"status":     "uploaded",
		"file_count": fileCount,
	}
}

func AnalysisStartedPayload(sessionID string, fileCount int) map[string]interface{} {
	return map[string]interface{}{
		"session_id": sessionID,
		"status":     "analyzing",
		"file_count": fileCount,
	}
}

func AnalysisCompletedPayload(sessionID string) map[string]interface{} {
	return map[string]interface{}{
		"session_id": sessionID,
		"status":     "analyzed",
	}
}

func AnalysisFailedPayload(sessionID string, errorMsg string) map[string]interface{} {
	return map[string]interface{}{
		"session_id": sessionID,
		"status":     "failed",
		"error":      errorMsg,
	}
}
