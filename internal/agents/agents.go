package agents

// Agent is one of the four fixed conversational personas. Prompt building
// is pure string work so every builder can be tested without a network.
type Agent struct {
	Key      string
	RoleName string

	// ChatIDSuffix is appended to the base session identifier to scope the
	// message thread. FallbackChatID serves anonymous usage with no session.
	ChatIDSuffix   string
	FallbackChatID string

	// ImageCaption is the persisted user-message text for image submissions.
	ImageCaption string

	WelcomeFunc     func(hasSession bool) string
	TextPromptFunc  func(brandAnalysis, userInput string) string
	ImagePromptFunc func(brandAnalysis string) string
}

// ChatID derives the chat identifier for a base session identifier. An
// empty session id yields the agent's generic fallback identifier.
func (a Agent) ChatID(sessionID string) string {
	if sessionID == "" {
		return a.FallbackChatID
	}
	return sessionID + a.ChatIDSuffix
}

func (a Agent) WelcomeMessage(hasSession bool) string {
	return a.WelcomeFunc(hasSession)
}

func (a Agent) TextPrompt(brandAnalysis, userInput string) string {
	return a.TextPromptFunc(brandAnalysis, userInput)
}

func (a Agent) ImageAuditPrompt(brandAnalysis string) string {
	return a.ImagePromptFunc(brandAnalysis)
}

var registry = map[string]Agent{
	"graphic": {
		Key:             "graphic",
		RoleName:        "designer graphique",
		ChatIDSuffix:    "",
		FallbackChatID:  "generic_session",
		ImageCaption:    "Image partagée pour analyse",
		WelcomeFunc:     graphicWelcome,
		TextPromptFunc:  graphicTextPrompt,
		ImagePromptFunc: graphicImagePrompt,
	},
	"social": {
		Key:             "social",
		RoleName:        "expert réseaux sociaux",
		ChatIDSuffix:    "_social",
		FallbackChatID:  "_social",
		ImageCaption:    "Post partagé pour analyse",
		WelcomeFunc:     socialWelcome,
		TextPromptFunc:  socialTextPrompt,
		ImagePromptFunc: socialImagePrompt,
	},
	"content": {
		Key:             "content",
		RoleName:        "copilote graphiste",
		ChatIDSuffix:    "_content",
		FallbackChatID:  "generic_content_chat",
		ImageCaption:    "Contenu partagé pour analyse",
		WelcomeFunc:     contentWelcome,
		TextPromptFunc:  contentTextPrompt,
		ImagePromptFunc: contentImagePrompt,
	},
	"web": {
		Key:             "web",
		RoleName:        "expert web design",
		ChatIDSuffix:    "",
		FallbackChatID:  "_web_generic_session",
		ImageCaption:    "Interface partagée pour analyse",
		WelcomeFunc:     webWelcome,
		TextPromptFunc:  webTextPrompt,
		ImagePromptFunc: webImagePrompt,
	},
}

// ByKey resolves an agent from its route segment.
func ByKey(key string) (Agent, bool) {
	agent, ok := registry[key]
	return agent, ok
}

// Keys lists the registered agent route segments.
func Keys() []string {
	return []string{"graphic", "social", "content", "web"}
}
