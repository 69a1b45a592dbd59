package handlers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"brandstudio-backend/internal/models"
	"brandstudio-backend/internal/supabase"
)

// SessionStore is the slice of the database client the session endpoints
// use. *supabase.DatabaseClient is the production implementation.
type SessionStore interface {
	CreateSession(sessionID string, userID uuid.NullUUID) (*models.UserSession, error)
	GetSessionBySessionID(sessionID string) (*models.UserSession, error)
	UpdateSessionFields(sessionID string, fields models.UpdateSessionRequest) (*models.UserSession, error)
}

type SessionsHandler struct {
	dbClient SessionStore
}

func NewSessionsHandler(dbClient SessionStore) *SessionsHandler {
	return &SessionsHandler{dbClient: dbClient}
}

const sessionTokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// generateSessionID produces the session_<millis>_<random> client token
// format the web app uses.
func generateSessionID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = sessionTokenAlphabet[rand.Intn(len(sessionTokenAlphabet))]
	}
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), string(b))
}

// Create godoc
// @Summary     Create onboarding session
// @Description Creates a session at step 0 with no assets. The session identifier is generated when not provided.
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       session body models.CreateSessionRequest false "Session options"
// @Success     201 {object} models.SessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /sessions [post]
func (h *SessionsHandler) Create(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = generateSessionID()
	}

	session, err := h.dbClient.CreateSession(sessionID, uuid.NullUUID{UUID: userID, Valid: true})
	if err != nil {
		if errors.Is(err, supabase.ErrSessionExists) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "session already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create session", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toSessionResponse(session))
}

// Get godoc
// @Summary     Get session
// @Description Fetches a session by its client identifier.
// @Tags        sessions
// @Produce     json
// @Security    Bearer
// @Param       session_id path string true "Session identifier"
// @Success     200 {object} models.SessionResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /sessions/{session_id} [get]
func (h *SessionsHandler) Get(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	session, err := h.dbClient.GetSessionBySessionID(c.Param("session_id"))
	if err != nil {
		if errors.Is(err, supabase.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get session", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

// Update godoc
// @Summary     Update session
// @Description Partial update: only the provided fields change, everything else is preserved.
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       session_id path string true "Session identifier"
// @Param       session body models.UpdateSessionRequest true "Fields to update"
// @Success     200 {object} models.SessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /sessions/{session_id} [patch]
func (h *SessionsHandler) Update(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	if req.CurrentStep == nil && req.HasVisualAssets == nil && req.HasTextualAssets == nil && req.BrandAnalysis == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no fields to update"})
		return
	}

	session, err := h.dbClient.UpdateSessionFields(c.Param("session_id"), req)
	if err != nil {
		if errors.Is(err, supabase.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update session", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}
