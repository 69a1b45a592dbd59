package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"brandstudio-backend/internal/middleware"
	"brandstudio-backend/internal/models"
)

// requireUserID pulls the authenticated user id out of the Gin context.
// Writes the error response itself so callers can bail with a bare return.
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid user id"})
		return uuid.Nil, false
	}
	return userID, true
}

func toSessionResponse(session *models.UserSession) models.SessionResponse {
	resp := models.SessionResponse{
		ID:               session.ID.String(),
		SessionID:        session.SessionID,
		CurrentStep:      session.CurrentStep,
		HasVisualAssets:  session.HasVisualAssets,
		HasTextualAssets: session.HasTextualAssets,
		CreatedAt:        session.CreatedAt,
		UpdatedAt:        session.UpdatedAt,
	}
	if session.BrandAnalysis.Valid {
		resp.BrandAnalysis = session.BrandAnalysis.String
	}
	return resp
}

func toProjectResponse(project *models.Project) models.ProjectResponse {
	resp := models.ProjectResponse{
		ID:        project.ID.String(),
		Name:      project.Name,
		Status:    project.Status,
		SessionID: project.SessionID,
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
	if project.Description.Valid {
		resp.Description = project.Description.String
	}
	return resp
}

func toAssetResponse(asset *models.BrandAsset) models.AssetResponse {
	return models.AssetResponse{
		ID:         asset.ID.String(),
		SessionID:  asset.SessionID,
		FileURL:    asset.FileURL,
		FileName:   asset.FileName,
		FileType:   asset.FileType,
		FileFormat: asset.FileFormat,
		CreatedAt:  asset.CreatedAt,
	}
}

func toMessageResponse(message *models.ChatMessage) models.MessageResponse {
	resp := models.MessageResponse{
		ID:          message.ID.String(),
		SessionID:   message.SessionID,
		Message:     message.Message,
		Sender:      message.Sender,
		MessageType: message.MessageType,
		CreatedAt:   message.CreatedAt,
	}
	if message.ImageURL.Valid {
		resp.ImageURL = message.ImageURL.String
	}
	return resp
}
