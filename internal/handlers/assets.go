package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"brandstudio-backend/internal/models"
	"brandstudio-backend/internal/supabase"
)

// AssetStore is the slice of the database client the asset endpoints use.
// *supabase.DatabaseClient is the production implementation.
type AssetStore interface {
	GetSessionBySessionID(sessionID string) (*models.UserSession, error)
	CreateAsset(asset *models.BrandAsset) error
	ListAssets(sessionID, category string) ([]models.BrandAsset, error)
	GetAsset(assetID uuid.UUID) (*models.BrandAsset, error)
	DeleteAsset(assetID uuid.UUID) error
	UpdateSessionFields(sessionID string, fields models.UpdateSessionRequest) (*models.UserSession, error)
}

// AssetStorage covers the object-storage operations behind uploads.
type AssetStorage interface {
	UploadAsset(userID uuid.NullUUID, sessionID, filename, contentType string, data []byte) (string, string, error)
	DeleteFile(storagePath string) error
}

type AssetsHandler struct {
	dbClient       AssetStore
	storageClient  AssetStorage
	realtimeClient *supabase.RealtimeClient
}

func NewAssetsHandler(dbClient AssetStore, storageClient AssetStorage, realtimeClient *supabase.RealtimeClient) *AssetsHandler {
	return &AssetsHandler{
		dbClient:       dbClient,
		storageClient:  storageClient,
		realtimeClient: realtimeClient,
	}
}

func detectContentType(filename string) string {
	if mimeType := mime.TypeByExtension(path.Ext(filename)); mimeType != "" {
		return mimeType
	}
	return "application/octet-stream"
}

// Upload godoc
// @Summary     Upload brand assets
// @Description Uploads one or more files for a session. Each file goes to object storage first,
// @Description then gets a registry row; a failure at either stage skips that file and is reported
// @Description per file without failing the rest of the batch. On success the session's asset flag
// @Description and step advance (visual: step 1, textual: step 2).
// @Tags        assets
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       session_id path string true "Session identifier"
// @Param       files formData file true "Asset files (multiple allowed)"
// @Param       category formData string true "Asset category: visual or textual"
// @Success     200 {object} models.UploadAssetsResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /sessions/{session_id}/assets [post]
func (h *AssetsHandler) Upload(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}
	if h.storageClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "storage not available"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	sessionID := c.Param("session_id")
	session, err := h.dbClient.GetSessionBySessionID(sessionID)
	if err != nil {
		if errors.Is(err, supabase.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get session", Message: err.Error()})
		return
	}

	category := c.PostForm("category")
	if category != "visual" && category != "textual" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid category",
			Message: "category must be visual or textual",
		})
		return
	}

	// Set max memory for multipart form (32MB)
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: err.Error(),
		})
		return
	}
	form := c.Request.MultipartForm
	if form == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: "multipart form is nil",
		})
		return
	}

	// Try multiple common field names
	var files []*multipart.FileHeader
	fieldNames := []string{"files", "file", "assets", "asset", "documents"}
	for _, fieldName := range fieldNames {
		if f := form.File[fieldName]; len(f) > 0 {
			files = f
			break
		}
	}
	if len(files) == 0 {
		availableFields := make([]string, 0, len(form.File))
		for fieldName := range form.File {
			availableFields = append(availableFields, fieldName)
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no files uploaded",
			Message: fmt.Sprintf("please provide files with one of these field names: %v. Available fields in request: %v", fieldNames, availableFields),
		})
		return
	}

	if h.realtimeClient != nil {
		_ = h.realtimeClient.PublishSessionEvent(sessionID, "upload.started",
			supabase.UploadStartedPayload(sessionID, len(files)))
	}

	owner := uuid.NullUUID{UUID: userID, Valid: true}
	uploaded := make([]models.AssetResponse, 0)
	uploadErrors := make([]models.UploadErrorInfo, 0)
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			uploadErrors = append(uploadErrors, models.UploadErrorInfo{
				Filename: file.Filename,
				Error:    fmt.Sprintf("failed to open file: %v", err),
				Stage:    "file_open",
			})
			continue
		}

		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			uploadErrors = append(uploadErrors, models.UploadErrorInfo{
				Filename: file.Filename,
				Error:    fmt.Sprintf("failed to read file data: %v", err),
				Stage:    "file_read",
			})
			continue
		}

		storagePath, publicURL, err := h.storageClient.UploadAsset(owner, sessionID, file.Filename, detectContentType(file.Filename), data)
		if err != nil {
			uploadErrors = append(uploadErrors, models.UploadErrorInfo{
				Filename: file.Filename,
				Error:    fmt.Sprintf("failed to upload to storage: %v", err),
				Stage:    "storage_upload",
			})
			continue
		}

		asset := &models.BrandAsset{
			UserID:      owner,
			SessionID:   sessionID,
			FileURL:     publicURL,
			FileName:    file.Filename,
			FileType:    category,
			FileFormat:  strings.TrimPrefix(path.Ext(file.Filename), "."),
			StoragePath: storagePath,
		}
		if err := h.dbClient.CreateAsset(asset); err != nil {
			// The stored object is orphaned here; the registry row is the
			// source of truth, so the file is reported as failed.
			uploadErrors = append(uploadErrors, models.UploadErrorInfo{
				Filename: file.Filename,
				Error:    fmt.Sprintf("failed to register asset: %v", err),
				Stage:    "db_insert",
			})
			continue
		}

		uploaded = append(uploaded, toAssetResponse(asset))
	}

	if len(uploaded) == 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "all uploads failed",
			Message: fmt.Sprintf("%d file(s) failed", len(uploadErrors)),
		})
		return
	}

	// Advance the onboarding state for the category that just landed.
	hasAssets := true
	update := models.UpdateSessionRequest{}
	if category == "visual" {
		step := 1
		update.CurrentStep = &step
		update.HasVisualAssets = &hasAssets
	} else {
		step := 2
		update.CurrentStep = &step
		update.HasTextualAssets = &hasAssets
	}
	if _, err := h.dbClient.UpdateSessionFields(session.SessionID, update); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update session", Message: err.Error()})
		return
	}

	if h.realtimeClient != nil {
		_ = h.realtimeClient.PublishSessionEvent(sessionID, "upload.completed",
			supabase.UploadCompletedPayload(sessionID, len(uploaded)))
	}

	c.JSON(http.StatusOK, models.UploadAssetsResponse{
		SessionID: sessionID,
		Uploaded:  uploaded,
		Succeeded: len(uploaded),
		Errors:    uploadErrors,
	})
}

// List godoc
// @Summary     List session assets
// @Description Returns the session's registered assets newest first, optionally filtered by category.
// @Tags        assets
// @Produce     json
// @Security    Bearer
// @Param       session_id path string true "Session identifier"
// @Param       category query string false "Filter: visual or textual"
// @Success     200 {object} models.AssetListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /sessions/{session_id}/assets [get]
func (h *AssetsHandler) List(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	category := c.Query("category")
	if category != "" && category != "visual" && category != "textual" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid category",
			Message: "category must be visual or textual",
		})
		return
	}

	assets, err := h.dbClient.ListAssets(c.Param("session_id"), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list assets", Message: err.Error()})
		return
	}

	resp := models.AssetListResponse{Assets: make([]models.AssetResponse, 0, len(assets))}
	for i := range assets {
		resp.Assets = append(resp.Assets, toAssetResponse(&assets[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary     Delete asset
// @Description Removes the stored object then the registry row.
// @Tags        assets
// @Produce     json
// @Security    Bearer
// @Param       asset_id path string true "Asset ID (UUID)"
// @Success     204 "No Content"
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /assets/{asset_id} [delete]
func (h *AssetsHandler) Delete(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	assetID, err := uuid.Parse(c.Param("asset_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid asset id"})
		return
	}

	asset, err := h.dbClient.GetAsset(assetID)
	if err != nil {
		if errors.Is(err, supabase.ErrAssetNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "asset not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get asset", Message: err.Error()})
		return
	}

	if h.storageClient != nil && asset.StoragePath != "" {
		// Best effort: a stale object is preferable to a row pointing at
		// nothing, so the row is removed regardless.
		_ = h.storageClient.DeleteFile(asset.StoragePath)
	}

	if err := h.dbClient.DeleteAsset(assetID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete asset", Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
