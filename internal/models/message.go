package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// ChatMessage rows are keyed by the chat identifier (base session id plus
// the agent suffix, or an agent's generic fallback id), not by the raw
// session identifier.
type ChatMessage struct {
	ID          uuid.UUID
	SessionID   string
	Message     string
	Sender      string
	MessageType string
	ImageURL    sql.NullString
	CreatedAt   time.Time
}
