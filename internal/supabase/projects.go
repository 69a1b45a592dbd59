package supabase

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"brandstudio-backend/internal/models"
)

var ErrProjectNotFound = errors.New("project not found")

func (d *DatabaseClient) CreateProject(userID uuid.NullUUID, name, description, sessionID string) (*models.Project, error) {
	var desc sql.NullString
	if description != "" {
		desc = sql.NullString{String: description, Valid: true}
	}

	var project models.Project
	err := d.db.QueryRow(`
		INSERT INTO projects (id, user_id, name, description, status, session_id)
		VALUES ($1, $2, $3, $4, 'active', $5)
		RETURNING id, user_id, name, description, status, session_id, created_at, updated_at
	`, uuid.New(), userID, name, desc, sessionID).Scan(
		&project.ID, &project.UserID, &project.Name, &project.Description,
		&project.Status, &project.SessionID, &project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &project, nil
}

func (d *DatabaseClient) GetProject(projectID, userID uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := d.db.QueryRow(`
		SELECT id, user_id, name, description, status, session_id, created_at, updated_at
		FROM projects
		WHERE id = $1 AND user_id = $2
	`, projectID, userID).Scan(
		&project.ID, &project.UserID, &project.Name, &project.Description,
		&project.Status, &project.SessionID, &project.CreatedAt, &project.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &project, nil
}

// ListActiveProjects excludes archived projects.
func (d *DatabaseClient) ListActiveProjects(userID uuid.UUID) ([]models.Project, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, name, description, status, session_id, created_at, updated_at
		FROM projects
		WHERE user_id = $1 AND status = 'active'
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID, &project.UserID, &project.Name, &project.Description,
			&project.Status, &project.SessionID, &project.CreatedAt, &project.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}

	return projects, nil
}

func (d *DatabaseClient) RenameProject(projectID, userID uuid.UUID, name string, description *string) (*models.Project, error) {
	var project models.Project
	err := d.db.QueryRow(`
		UPDATE projects
		SET name = $1, description = COALESCE($2, description), updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING id, user_id, name, description, status, session_id, created_at, updated_at
	`, name, description, projectID, userID).Scan(
		&project.ID, &project.UserID, &project.Name, &project.Description,
		&project.Status, &project.SessionID, &project.CreatedAt, &project.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to rename project: %w", err)
	}

	return &project, nil
}

// ArchiveProject is a soft delete: the row stays, only the status flips.
func (d *DatabaseClient) ArchiveProject(projectID, userID uuid.UUID) error {
	result, err := d.db.Exec(`
		UPDATE projects
		SET status = 'archived', updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`, projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to archive project: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
