package supabase

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"brandstudio-backend/internal/models"
)

var ErrAssetNotFound = errors.New("asset not found")

func (d *DatabaseClient) CreateAsset(asset *models.BrandAsset) error {
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}
	err := d.db.QueryRow(`
		INSERT INTO brand_assets (id, user_id, session_id, file_url, file_name, file_type, file_format, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`, asset.ID, asset.UserID, asset.SessionID, asset.FileURL, asset.FileName,
		asset.FileType, asset.FileFormat, asset.StoragePath).Scan(&asset.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

// ListAssets returns the session's assets newest first. An empty category
// returns both visual and textual assets.
func (d *DatabaseClient) ListAssets(sessionID, category string) ([]models.BrandAsset, error) {
	query := `
		SELECT id, user_id, session_id, file_url, file_name, file_type, file_format, storage_path, created_at
		FROM brand_assets
		WHERE session_id = $1
	`
	args := []interface{}{sessionID}
	if category != "" {
		query += ` AND file_type = $2`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []models.BrandAsset
	for rows.Next() {
		var asset models.BrandAsset
		err := rows.Scan(
			&asset.ID, &asset.UserID, &asset.SessionID, &asset.FileURL, &asset.FileName,
			&asset.FileType, &asset.FileFormat, &asset.StoragePath, &asset.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, asset)
	}

	return assets, nil
}

func (d *DatabaseClient) GetAsset(assetID uuid.UUID) (*models.BrandAsset, error) {
	var asset models.BrandAsset
	err := d.db.QueryRow(`
		SELECT id, user_id, session_id, file_url, file_name, file_type, file_format, storage_path, created_at
		FROM brand_assets
		WHERE id = $1
	`, assetID).Scan(
		&asset.ID, &asset.UserID, &asset.SessionID, &asset.FileURL, &asset.FileName,
		&asset.FileType, &asset.FileFormat, &asset.StoragePath, &asset.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return &asset, nil
}

func (d *DatabaseClient) DeleteAsset(assetID uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM brand_assets
		WHERE id = $1
	`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}
