package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"brandstudio-backend/internal/models"
	"brandstudio-backend/internal/supabase"
)

type ProjectsHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewProjectsHandler(dbClient *supabase.DatabaseClient) *ProjectsHandler {
	return &ProjectsHandler{dbClient: dbClient}
}

// Create godoc
// @Summary     Create project
// @Description Creates an active project. When no session identifier is provided one is generated and its backing session row created.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       project body models.CreateProjectRequest true "Project"
// @Success     201 {object} models.ProjectResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects [post]
func (h *ProjectsHandler) Create(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	owner := uuid.NullUUID{UUID: userID, Valid: true}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = generateSessionID()
		if _, err := h.dbClient.CreateSession(sessionID, owner); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create session", Message: err.Error()})
			return
		}
	}

	project, err := h.dbClient.CreateProject(owner, req.Name, req.Description, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create project", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toProjectResponse(project))
}

// List godoc
// @Summary     List projects
// @Description Returns the caller's active projects, newest first. Archived projects are excluded.
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ProjectListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects [get]
func (h *ProjectsHandler) List(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	projects, err := h.dbClient.ListActiveProjects(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list projects", Message: err.Error()})
		return
	}

	resp := models.ProjectListResponse{Projects: make([]models.ProjectResponse, 0, len(projects))}
	for i := range projects {
		resp.Projects = append(resp.Projects, toProjectResponse(&projects[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary     Project detail
// @Description Returns the project with its session state and registered assets.
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Success     200 {object} models.ProjectDetailResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects/{project_id} [get]
func (h *ProjectsHandler) Get(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	project, err := h.dbClient.GetProject(projectID, userID)
	if err != nil {
		if errors.Is(err, supabase.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get project", Message: err.Error()})
		return
	}

	resp := models.ProjectDetailResponse{
		Project: toProjectResponse(project),
		Assets:  make([]models.AssetResponse, 0),
	}

	if session, err := h.dbClient.GetSessionBySessionID(project.SessionID); err == nil {
		sessionResp := toSessionResponse(session)
		resp.Session = &sessionResp
	}

	if assets, err := h.dbClient.ListAssets(project.SessionID, ""); err == nil {
		for i := range assets {
			resp.Assets = append(resp.Assets, toAssetResponse(&assets[i]))
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary     Rename project
// @Description Updates the project name and optionally its description.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       project body models.UpdateProjectRequest true "Fields to update"
// @Success     200 {object} models.ProjectResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects/{project_id} [patch]
func (h *ProjectsHandler) Update(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	project, err := h.dbClient.RenameProject(projectID, userID, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, supabase.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update project", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(project))
}

// Delete godoc
// @Summary     Archive project
// @Description Soft delete: the project status flips to archived and it disappears from listings. No rows are removed.
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Success     204 "No Content"
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects/{project_id} [delete]
func (h *ProjectsHandler) Delete(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	if err := h.dbClient.ArchiveProject(projectID, userID); err != nil {
		if errors.Is(err, supabase.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to archive project", Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
