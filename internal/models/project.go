package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID
	UserID      uuid.NullUUID
	Name        string
	Description sql.NullString
	Status      string
	SessionID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type BrandAsset struct {
	ID          uuid.UUID
	UserID      uuid.NullUUID
	SessionID   string
	FileURL     string
	FileName    string
	FileType    string
	FileFormat  string
	StoragePath string
	CreatedAt   time.Time
}
