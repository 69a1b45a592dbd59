package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"brandstudio-backend/internal/analysis"
	"brandstudio-backend/internal/models"
	"brandstudio-backend/internal/supabase"
)

// AnalysisRunner produces a brand analysis for a session.
// *analysis.Pipeline is the production implementation.
type AnalysisRunner interface {
	Run(ctx context.Context, sessionID string) (*models.UserSession, int, error)
}

type AnalysisHandler struct {
	pipeline AnalysisRunner
}

func NewAnalysisHandler(pipeline AnalysisRunner) *AnalysisHandler {
	return &AnalysisHandler{pipeline: pipeline}
}

// Run godoc
// @Summary     Run brand analysis
// @Description Analyzes the session's uploaded assets with the model and stores the
// @Description resulting brand profile on the session, advancing it to the chat step.
// @Description Without assets a generic profile is produced. A failed model call leaves
// @Description the session untouched; re-running overwrites the previous analysis.
// @Tags        analysis
// @Produce     json
// @Security    Bearer
// @Param       session_id path string true "Session identifier"
// @Success     200 {object} models.AnalysisResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /sessions/{session_id}/analysis [post]
func (h *AnalysisHandler) Run(c *gin.Context) {
	if h.pipeline == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "analysis not available"})
		return
	}

	sessionID := c.Param("session_id")
	session, fileCount, err := h.pipeline.Run(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, supabase.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "session not found"})
		case errors.Is(err, analysis.ErrModelFailed):
			// Upstream model failure, not ours.
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "analysis unavailable",
				Message: err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to run analysis",
				Message: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.AnalysisResponse{
		SessionID:     session.SessionID,
		BrandAnalysis: session.BrandAnalysis.String,
		FileCount:     fileCount,
	})
}
