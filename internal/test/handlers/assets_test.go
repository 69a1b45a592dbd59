package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"brandstudio-backend/internal/handlers"
	"brandstudio-backend/internal/models"
	"brandstudio-backend/internal/supabase"
)

// fakeAssetStore serves one session and records asset rows and session
// updates in memory.
type fakeAssetStore struct {
	session *models.UserSession
	assets  []models.BrandAsset
	updates []models.UpdateSessionRequest
}

func (f *fakeAssetStore) GetSessionBySessionID(sessionID string) (*models.UserSession, error) {
	if f.session == nil || f.session.SessionID != sessionID {
		return nil, supabase.ErrSessionNotFound
	}
	return f.session, nil
}

func (f *fakeAssetStore) CreateAsset(asset *models.BrandAsset) error {
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}
	asset.CreatedAt = time.Now()
	f.assets = append(f.assets, *asset)
	return nil
}

func (f *fakeAssetStore) ListAssets(sessionID, category string) ([]models.BrandAsset, error) {
	return f.assets, nil
}

func (f *fakeAssetStore) GetAsset(assetID uuid.UUID) (*models.BrandAsset, error) {
	return nil, supabase.ErrAssetNotFound
}

func (f *fakeAssetStore) DeleteAsset(assetID uuid.UUID) error {
	return nil
}

func (f *fakeAssetStore) UpdateSessionFields(sessionID string, fields models.UpdateSessionRequest) (*models.UserSession, error) {
	f.updates = append(f.updates, fields)
	return f.session, nil
}

// fakeAssetStorage fails uploads for the named files and accepts the rest.
type fakeAssetStorage struct {
	failNames map[string]bool
}

func (f *fakeAssetStorage) UploadAsset(userID uuid.NullUUID, sessionID, filename, contentType string, data []byte) (string, string, error) {
	if f.failNames[filename] {
		return "", "", fmt.Errorf("bucket rejected upload")
	}
	storagePath := fmt.Sprintf("users/u/sessions/%s/%s", sessionID, filename)
	return storagePath, "https://example.supabase.co/storage/v1/object/public/brand-assets/" + storagePath, nil
}

func (f *fakeAssetStorage) DeleteFile(storagePath string) error {
	return nil
}

func multipartUpload(t *testing.T, category string, filenames ...string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	assert.NoError(t, writer.WriteField("category", category))
	for _, name := range filenames {
		part, err := writer.CreateFormFile("files", name)
		assert.NoError(t, err)
		_, err = part.Write([]byte("file-bytes"))
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func assetsRouter(dbClient handlers.AssetStore, storageClient handlers.AssetStorage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewAssetsHandler(dbClient, storageClient, nil)
	router := gin.New()
	router.Use(fakeAuth(uuid.New().String()))
	router.POST("/sessions/:session_id/assets", handler.Upload)
	router.GET("/sessions/:session_id/assets", handler.List)
	router.DELETE("/assets/:asset_id", handler.Delete)
	return router
}

func TestAssetsHandler_DatabaseUnavailable(t *testing.T) {
	router := assetsRouter(nil, nil)

	req, _ := http.NewRequest("GET", "/sessions/session_1_abc/assets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "database not available")
}

func TestAssetsHandler_Upload_StorageUnavailable(t *testing.T) {
	router := assetsRouter(&supabase.DatabaseClient{}, nil)

	req, _ := http.NewRequest("POST", "/sessions/session_1_abc/assets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "storage not available")
}

func TestAssetsHandler_Upload_ToleratesPerFileFailure(t *testing.T) {
	store := &fakeAssetStore{session: &models.UserSession{ID: uuid.New(), SessionID: "session_1_abcdefghi"}}
	storage := &fakeAssetStorage{failNames: map[string]bool{"charte.pdf": true}}
	router := assetsRouter(store, storage)

	body, contentType := multipartUpload(t, "visual", "logo.png", "charte.pdf")
	req, _ := http.NewRequest("POST", "/sessions/session_1_abcdefghi/assets", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.UploadAssetsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Succeeded)
	if assert.Len(t, resp.Errors, 1) {
		assert.Equal(t, "charte.pdf", resp.Errors[0].Filename)
		assert.Equal(t, "storage_upload", resp.Errors[0].Stage)
	}
	if assert.Len(t, store.assets, 1) {
		assert.Equal(t, "logo.png", store.assets[0].FileName)
		assert.Equal(t, "visual", store.assets[0].FileType)
	}

	// One surviving file still advances the onboarding state.
	if assert.Len(t, store.updates, 1) {
		fields := store.updates[0]
		if assert.NotNil(t, fields.CurrentStep) {
			assert.Equal(t, 1, *fields.CurrentStep)
		}
		if assert.NotNil(t, fields.HasVisualAssets) {
			assert.True(t, *fields.HasVisualAssets)
		}
		assert.Nil(t, fields.HasTextualAssets)
	}
}

func TestAssetsHandler_Upload_AllFilesFailed(t *testing.T) {
	store := &fakeAssetStore{session: &models.UserSession{ID: uuid.New(), SessionID: "session_1_abcdefghi"}}
	storage := &fakeAssetStorage{failNames: map[string]bool{"logo.png": true, "charte.pdf": true}}
	router := assetsRouter(store, storage)

	body, contentType := multipartUpload(t, "textual", "logo.png", "charte.pdf")
	req, _ := http.NewRequest("POST", "/sessions/session_1_abcdefghi/assets", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "all uploads failed")
	assert.Empty(t, store.assets)
	assert.Empty(t, store.updates)
}

func TestAssetsHandler_Upload_SessionNotFound(t *testing.T) {
	store := &fakeAssetStore{}
	router := assetsRouter(store, &fakeAssetStorage{})

	body, contentType := multipartUpload(t, "visual", "logo.png")
	req, _ := http.NewRequest("POST", "/sessions/session_9_missing00/assets", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "session not found")
}

func TestAssetsHandler_List_InvalidCategory(t *testing.T) {
	router := assetsRouter(&supabase.DatabaseClient{}, nil)

	req, _ := http.NewRequest("GET", "/sessions/session_1_abc/assets?category=audio", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid category")
}

func TestAssetsHandler_Delete_InvalidAssetID(t *testing.T) {
	router := assetsRouter(&supabase.DatabaseClient{}, nil)

	req, _ := http.NewRequest("DELETE", "/assets/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid asset id")
}
