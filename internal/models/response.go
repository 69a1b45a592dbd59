package models

import "time"

type SessionResponse struct {
	ID               string    `json:"id"`
	SessionID        string    `json:"session_id"`
	CurrentStep      int       `json:"current_step"`
	HasVisualAssets  bool      `json:"has_visual_assets"`
	HasTextualAssets bool      `json:"has_textual_assets"`
	BrandAnalysis    string    `json:"brand_analysis,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ProjectResponse struct {
	ID          string    `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	SessionID   string    `json:"session_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ProjectDetailResponse backs the project-detail view: the project, its
// session state and the registered assets.
type ProjectDetailResponse struct {
	Project ProjectResponse  `json:"project"`
	Session *SessionResponse `json:"session,omitempty"`
	Assets  []AssetResponse  `json:"assets"`
}

type AssetResponse struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	FileURL    string    `json:"file_url"`
	FileName   string    `json:"file_name"`
	FileType   string    `json:"file_type"`
	FileFormat string    `json:"file_format"`
	CreatedAt  time.Time `json:"created_at"`
}

type AssetListResponse struct {
	Assets []AssetResponse `json:"assets"`
}

type UploadErrorInfo struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
	Stage    string `json:"stage"`
}

type UploadAssetsResponse struct {
	SessionID string            `json:"session_id"`
	Uploaded  []AssetResponse   `json:"uploaded"`
	Succeeded int               `json:"succeeded"`
	Errors    []UploadErrorInfo `json:"errors,omitempty"`
}

type AnalysisResponse struct {
	SessionID     string `json:"session_id"`
	BrandAnalysis string `json:"brand_analysis"`
	FileCount     int    `json:"file_count"`
}

type MessageResponse struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	Message     string    `json:"message"`
	Sender      string    `json:"sender"`
	MessageType string    `json:"message_type"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type MessageListResponse struct {
	ChatID   string            `json:"chat_id"`
	Messages []MessageResponse `json:"messages"`
}

type SendMessageResponse struct {
	ChatID      string           `json:"chat_id"`
	UserMessage MessageResponse  `json:"user_message"`
	AIMessage   *MessageResponse `json:"ai_message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
