package supabase

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"brandstudio-backend/internal/models"
)

var (
	ErrSessionExists   = errors.New("session identifier already exists")
	ErrSessionNotFound = errors.New("session not found")
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (d *DatabaseClient) CreateSession(sessionID string, userID uuid.NullUUID) (*models.UserSession, error) {
	var session models.UserSession
	err := d.db.QueryRow(`
		INSERT INTO user_sessions (id, user_id, session_id, current_step, has_visual_assets, has_textual_assets)
		VALUES ($1, $2, $3, 0, false, false)
		RETURNING id, user_id, session_id, current_step, has_visual_assets, has_textual_assets, brand_analysis, created_at, updated_at
	`, uuid.New(), userID, sessionID).Scan(
		&session.ID, &session.UserID, &session.SessionID, &session.CurrentStep,
		&session.HasVisualAssets, &session.HasTextualAssets, &session.BrandAnalysis,
		&session.CreatedAt, &session.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrSessionExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &session, nil
}

// GetSessionBySessionID returns the first session matching the opaque
// identifier, newest first.
func (d *DatabaseClient) GetSessionBySessionID(sessionID string) (*models.UserSession, error) {
	var session models.UserSession
	err := d.db.QueryRow(`
		SELECT id, user_id, session_id, current_step, has_visual_assets, has_textual_assets, brand_analysis, created_at, updated_at
		FROM user_sessions
		WHERE session_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, sessionID).Scan(
		&session.ID, &session.UserID, &session.SessionID, &session.CurrentStep,
		&session.HasVisualAssets, &session.HasTextualAssets, &session.BrandAnalysis,
		&session.CreatedAt, &session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}

// UpdateSessionFields merges the non-nil fields into the session row and
// leaves everything else untouched.
func (d *DatabaseClient) UpdateSessionFields(sessionID string, fields models.UpdateSessionRequest) (*models.UserSession, error) {
	var session models.UserSession
	err := d.db.QueryRow(`
		UPDATE user_sessions SET
			current_step = COALESCE($1, current_step),
			has_visual_assets = COALESCE($2, has_visual_assets),
			has_textual_assets = COALESCE($3, has_textual_assets),
			brand_analysis = COALESCE($4, brand_analysis),
			updated_at = NOW()
		WHERE id = (
			SELECT id FROM user_sessions WHERE session_id = $5 ORDER BY created_at DESC LIMIT 1
		)
		RETURNING id, user_id, session_id, current_step, has_visual_assets, has_textual_assets, brand_analysis, created_at, updated_at
	`, fields.CurrentStep, fields.HasVisualAssets, fields.HasTextualAssets, fields.BrandAnalysis, sessionID).Scan(
		&session.ID, &session.UserID, &session.SessionID, &session.CurrentStep,
		&session.HasVisualAssets, &session.HasTextualAssets, &session.BrandAnalysis,
		&session.CreatedAt, &session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return &session, nil
}

// SetBrandAnalysis writes the analysis result and advances the session to
// the final onboarding step. A second invocation overwrites the previous
// analysis (last write wins, not guarded).
func (d *DatabaseClient) SetBrandAnalysis(sessionID string, analysis string) (*models.UserSession, error) {
	step := 3
	var session models.UserSession
	err := d.db.QueryRow(`
		UPDATE user_sessions SET
			current_step = $1,
			brand_analysis = $2,
			updated_at = NOW()
		WHERE id = (
			SELECT id FROM user_sessions WHERE session_id = $3 ORDER BY created_at DESC LIMIT 1
		)
		RETURNING id, user_id, session_id, current_step, has_visual_assets, has_textual_assets, brand_analysis, created_at, updated_at
	`, step, analysis, sessionID).Scan(
		&session.ID, &session.UserID, &session.SessionID, &session.CurrentStep,
		&session.HasVisualAssets, &session.HasTextualAssets, &session.BrandAnalysis,
		&session.CreatedAt, &session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save brand analysis: %w", err)
	}

	return &session, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
