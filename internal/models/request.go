package models

type CreateSessionRequest struct {
	// SessionID is the client-generated opaque token. Generated server-side
	// when empty.
	SessionID string `json:"session_id,omitempty"`
}

type UpdateSessionRequest struct {
	CurrentStep      *int    `json:"current_step,omitempty"`
	HasVisualAssets  *bool   `json:"has_visual_assets,omitempty"`
	HasTextualAssets *bool   `json:"has_textual_assets,omitempty"`
	BrandAnalysis    *string `json:"brand_analysis,omitempty"`
}

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	// SessionID is optional; a session_<timestamp>_<random> identifier is
	// generated and a backing session row created when absent.
	SessionID string `json:"session_id,omitempty"`
}

type UpdateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

type SignUpRequest struct {
	Email    string                 `json:"email" binding:"required"`
	Password string                 `json:"password" binding:"required"`
	Profile  map[string]interface{} `json:"profile,omitempty"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RecoverRequest struct {
	Email string `json:"email" binding:"required"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
