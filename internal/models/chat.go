package models

// Chat message roles, matching the completion API's wire values.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of an AI chat session. Messages are ephemeral: they
// live only for the duration of a session and are never persisted individually
// (only the eventual summary is).
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
