package handlers_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"brandstudio-backend/internal/analysis"
	"brandstudio-backend/internal/handlers"
	"brandstudio-backend/internal/models"
	"brandstudio-backend/internal/supabase"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

type fakeRunner struct {
	session *models.UserSession
	files   int
	err     error
}

func (f *fakeRunner) Run(ctx context.Context, sessionID string) (*models.UserSession, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.session, f.files, nil
}

func analysisRouter(runner handlers.AnalysisRunner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewAnalysisHandler(runner)
	router := gin.New()
	router.POST("/sessions/:session_id/analysis", handler.Run)
	return router
}

func TestAnalysisHandler_Run_SessionNotFound(t *testing.T) {
	router := analysisRouter(&fakeRunner{err: supabase.ErrSessionNotFound})

	req, _ := http.NewRequest("POST", "/sessions/session_9_missing00/analysis", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "session not found")
}

func TestAnalysisHandler_Run_ModelFailureIsBadGateway(t *testing.T) {
	router := analysisRouter(&fakeRunner{
		err: fmt.Errorf("%w: llm response status 429", analysis.ErrModelFailed),
	})

	req, _ := http.NewRequest("POST", "/sessions/session_1_abcdefghi/analysis", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "analysis unavailable")
}

func TestAnalysisHandler_Run_StoreFailureIsInternalError(t *testing.T) {
	router := analysisRouter(&fakeRunner{
		err: errors.New("failed to store brand analysis: connection reset"),
	})

	req, _ := http.NewRequest("POST", "/sessions/session_1_abcdefghi/analysis", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to run analysis")
}

func TestAnalysisHandler_Run_Success(t *testing.T) {
	router := analysisRouter(&fakeRunner{
		session: &models.UserSession{
			SessionID:     "session_1_abcdefghi",
			CurrentStep:   3,
			BrandAnalysis: nullString("1. **IDENTITÉ VISUELLE** ..."),
		},
		files: 2,
	})

	req, _ := http.NewRequest("POST", "/sessions/session_1_abcdefghi/analysis", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"file_count":2`)
	assert.Contains(t, w.Body.String(), "IDENTITÉ VISUELLE")
}
