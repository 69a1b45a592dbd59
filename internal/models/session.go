package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// UserSession tracks one onboarding pass. SessionID is the opaque client
// token (session_<timestamp>_<random>) that ties together the project,
// the uploaded assets and the chat threads.
type UserSession struct {
	ID               uuid.UUID
	UserID           uuid.NullUUID
	SessionID        string
	CurrentStep      int
	HasVisualAssets  bool
	HasTextualAssets bool
	BrandAnalysis    sql.NullString
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
