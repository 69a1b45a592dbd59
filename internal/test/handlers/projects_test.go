package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"brandstudio-backend/internal/handlers"
	"brandstudio-backend/internal/supabase"
)

func projectsRouter(dbClient *supabase.DatabaseClient, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewProjectsHandler(dbClient)
	router := gin.New()
	router.Use(fakeAuth(userID))
	router.POST("/projects", handler.Create)
	router.GET("/projects/:project_id", handler.Get)
	router.PATCH("/projects/:project_id", handler.Update)
	router.DELETE("/projects/:project_id", handler.Delete)
	return router
}

func TestProjectsHandler_DatabaseUnavailable(t *testing.T) {
	router := projectsRouter(nil, uuid.New().String())

	req, _ := http.NewRequest("POST", "/projects", strings.NewReader(`{"name":"Projet 1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "database not available")
}

func TestProjectsHandler_Create_MissingName(t *testing.T) {
	router := projectsRouter(&supabase.DatabaseClient{}, uuid.New().String())

	req, _ := http.NewRequest("POST", "/projects", strings.NewReader(`{"description":"sans nom"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectsHandler_Get_InvalidProjectID(t *testing.T) {
	router := projectsRouter(&supabase.DatabaseClient{}, uuid.New().String())

	req, _ := http.NewRequest("GET", "/projects/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid project id")
}

func TestProjectsHandler_Delete_InvalidProjectID(t *testing.T) {
	router := projectsRouter(&supabase.DatabaseClient{}, uuid.New().String())

	req, _ := http.NewRequest("DELETE", "/projects/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
