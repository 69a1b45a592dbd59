package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supabase-community/gotrue-go/types"

	"brandstudio-backend/internal/models"
	"brandstudio-backend/internal/supabase"
)

// AuthHandler proxies the email/password subset of Supabase auth. OAuth,
// password update and verification flows stay client-side.
type AuthHandler struct {
	client *supabase.Client
}

func NewAuthHandler(client *supabase.Client) *AuthHandler {
	return &AuthHandler{client: client}
}

// SignUp godoc
// @Summary     Sign up
// @Description Creates a Supabase user with email and password. Optional profile data is stored as user metadata.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       credentials body models.SignUpRequest true "Credentials"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "auth not available"})
		return
	}

	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	resp, err := h.client.Supabase.Auth.Signup(types.SignupRequest{
		Email:    req.Email,
		Password: req.Password,
		Data:     req.Profile,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "signup failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SignIn godoc
// @Summary     Sign in
// @Description Exchanges email and password for a Supabase access token.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       credentials body models.SignInRequest true "Credentials"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "auth not available"})
		return
	}

	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	session, err := h.client.Supabase.Auth.SignInWithEmailPassword(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// Recover godoc
// @Summary     Request password recovery
// @Description Sends a password recovery email through Supabase.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       email body models.RecoverRequest true "Account email"
// @Success     200 {object} map[string]string
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /auth/recover [post]
func (h *AuthHandler) Recover(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "auth not available"})
		return
	}

	var req models.RecoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	if err := h.client.Supabase.Auth.Recover(types.RecoverRequest{Email: req.Email}); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "recover failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "recovery email sent"})
}
