package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"brandstudio-backend/internal/agents"
	"brandstudio-backend/internal/chat"
	"brandstudio-backend/internal/models"
)

type ChatHandler struct {
	service *chat.Service
}

func NewChatHandler(service *chat.Service) *ChatHandler {
	return &ChatHandler{service: service}
}

func resolveAgent(c *gin.Context) (agents.Agent, bool) {
	agent, ok := agents.ByKey(c.Param("agent"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "unknown agent",
			Message: fmt.Sprintf("agent must be one of: %v", agents.Keys()),
		})
		return agents.Agent{}, false
	}
	return agent, true
}

// GetMessages godoc
// @Summary     Chat history
// @Description Returns the thread for the agent in chronological order. An empty thread
// @Description is seeded with the agent's welcome message, sent exactly once. Without a
// @Description session query param the agent's generic thread is used.
// @Tags        chat
// @Produce     json
// @Security    Bearer
// @Param       agent path string true "Agent: graphic, social, content or web"
// @Param       session query string false "Session identifier"
// @Success     200 {object} models.MessageListResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /chat/{agent}/messages [get]
func (h *ChatHandler) GetMessages(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "chat not available"})
		return
	}

	agent, ok := resolveAgent(c)
	if !ok {
		return
	}

	chatID, messages, err := h.service.History(c.Request.Context(), agent, c.Query("session"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load history", Message: err.Error()})
		return
	}

	resp := models.MessageListResponse{
		ChatID:   chatID,
		Messages: make([]models.MessageResponse, 0, len(messages)),
	}
	for i := range messages {
		resp.Messages = append(resp.Messages, toMessageResponse(&messages[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// SendMessage godoc
// @Summary     Send chat message
// @Description Persists the user message, invokes the model with the agent's prompt
// @Description (brand-aware when the session has a stored analysis) and persists the reply.
// @Description When the model call fails the user message is already durable: the response
// @Description is 502 and the thread holds the question with no answer.
// @Tags        chat
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       agent path string true "Agent: graphic, social, content or web"
// @Param       session query string false "Session identifier"
// @Param       message body models.SendMessageRequest true "Message"
// @Success     200 {object} models.SendMessageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /chat/{agent}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "chat not available"})
		return
	}

	agent, ok := resolveAgent(c)
	if !ok {
		return
	}

	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	text := strings.TrimSpace(req.Message)
	if text == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "message must not be empty"})
		return
	}

	chatID, userMsg, aiMsg, err := h.service.SendText(c.Request.Context(), agent, c.Query("session"), text)
	if err != nil {
		if userMsg == nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to send message", Message: err.Error()})
			return
		}
		// User message persisted, no answer.
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "model unavailable", Message: err.Error()})
		return
	}

	aiResp := toMessageResponse(aiMsg)
	c.JSON(http.StatusOK, models.SendMessageResponse{
		ChatID:      chatID,
		UserMessage: toMessageResponse(userMsg),
		AIMessage:   &aiResp,
	})
}

// SendImage godoc
// @Summary     Send image for audit
// @Description Uploads the image, persists it as a user message with the agent's fixed
// @Description caption and asks the model for an audit against the brand analysis.
// @Tags        chat
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       agent path string true "Agent: graphic, social, content or web"
// @Param       session query string false "Session identifier"
// @Param       image formData file true "Image file"
// @Success     200 {object} models.SendMessageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /chat/{agent}/images [post]
func (h *ChatHandler) SendImage(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "chat not available"})
		return
	}

	agent, ok := resolveAgent(c)
	if !ok {
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "image file required", Message: err.Error()})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to open file", Message: err.Error()})
		return
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read file", Message: err.Error()})
		return
	}

	chatID, userMsg, aiMsg, err := h.service.SendImage(
		c.Request.Context(), agent, c.Query("session"),
		uuid.NullUUID{UUID: userID, Valid: true},
		file.Filename, detectContentType(file.Filename), data,
	)
	if err != nil {
		if userMsg == nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to send image", Message: err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "model unavailable", Message: err.Error()})
		return
	}

	aiResp := toMessageResponse(aiMsg)
	c.JSON(http.StatusOK, models.SendMessageResponse{
		ChatID:      chatID,
		UserMessage: toMessageResponse(userMsg),
		AIMessage:   &aiResp,
	})
}
