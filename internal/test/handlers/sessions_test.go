package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"brandstudio-backend/internal/handlers"
	"brandstudio-backend/internal/middleware"
	"brandstudio-backend/internal/models"
	"brandstudio-backend/internal/supabase"
)

// fakeSessionStore records every store call so the tests can assert on
// what the handler forwarded.
type fakeSessionStore struct {
	created []string
	updated []models.UpdateSessionRequest
}

func (f *fakeSessionStore) CreateSession(sessionID string, userID uuid.NullUUID) (*models.UserSession, error) {
	f.created = append(f.created, sessionID)
	return &models.UserSession{ID: uuid.New(), UserID: userID, SessionID: sessionID}, nil
}

func (f *fakeSessionStore) GetSessionBySessionID(sessionID string) (*models.UserSession, error) {
	return nil, supabase.ErrSessionNotFound
}

func (f *fakeSessionStore) UpdateSessionFields(sessionID string, fields models.UpdateSessionRequest) (*models.UserSession, error) {
	f.updated = append(f.updated, fields)
	session := &models.UserSession{ID: uuid.New(), SessionID: sessionID}
	if fields.CurrentStep != nil {
		session.CurrentStep = *fields.CurrentStep
	}
	return session, nil
}

// fakeAuth stands in for the JWT middleware in handler tests.
func fakeAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func TestSessionsHandler_DatabaseUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewSessionsHandler(nil)
	router := gin.New()
	router.Use(fakeAuth(uuid.New().String()))
	router.POST("/sessions", handler.Create)

	req, _ := http.NewRequest("POST", "/sessions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "database not available")
}

func TestSessionsHandler_Create_MissingUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewSessionsHandler(&supabase.DatabaseClient{})
	router := gin.New()
	router.POST("/sessions", handler.Create)

	req, _ := http.NewRequest("POST", "/sessions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionsHandler_Create_InvalidUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewSessionsHandler(&supabase.DatabaseClient{})
	router := gin.New()
	router.Use(fakeAuth("not-a-uuid"))
	router.POST("/sessions", handler.Create)

	req, _ := http.NewRequest("POST", "/sessions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid user id")
}

func TestSessionsHandler_Create_GeneratesSessionToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &fakeSessionStore{}
	handler := handlers.NewSessionsHandler(store)
	router := gin.New()
	router.Use(fakeAuth(uuid.New().String()))
	router.POST("/sessions", handler.Create)

	req, _ := http.NewRequest("POST", "/sessions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	if assert.Len(t, store.created, 1) {
		assert.Regexp(t, regexp.MustCompile(`^session_\d+_[a-z0-9]{9}$`), store.created[0])
	}
}

func TestSessionsHandler_Create_KeepsClientToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &fakeSessionStore{}
	handler := handlers.NewSessionsHandler(store)
	router := gin.New()
	router.Use(fakeAuth(uuid.New().String()))
	router.POST("/sessions", handler.Create)

	req, _ := http.NewRequest("POST", "/sessions", strings.NewReader(`{"session_id":"session_5_zzzzzzzzz"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	if assert.Len(t, store.created, 1) {
		assert.Equal(t, "session_5_zzzzzzzzz", store.created[0])
	}
}

func TestSessionsHandler_Update_ForwardsOnlyProvidedFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &fakeSessionStore{}
	handler := handlers.NewSessionsHandler(store)
	router := gin.New()
	router.Use(fakeAuth(uuid.New().String()))
	router.PATCH("/sessions/:session_id", handler.Update)

	req, _ := http.NewRequest("PATCH", "/sessions/session_1_abc", strings.NewReader(`{"current_step":2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.Len(t, store.updated, 1) {
		fields := store.updated[0]
		if assert.NotNil(t, fields.CurrentStep) {
			assert.Equal(t, 2, *fields.CurrentStep)
		}
		assert.Nil(t, fields.HasVisualAssets)
		assert.Nil(t, fields.HasTextualAssets)
		assert.Nil(t, fields.BrandAnalysis)
	}
}

func TestSessionsHandler_Update_NoFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewSessionsHandler(&supabase.DatabaseClient{})
	router := gin.New()
	router.Use(fakeAuth(uuid.New().String()))
	router.PATCH("/sessions/:session_id", handler.Update)

	req, _ := http.NewRequest("PATCH", "/sessions/session_1_abc", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no fields to update")
}
