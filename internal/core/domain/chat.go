package domain

import "time"

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is one entry of a session's assistant transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	// ChatFallbackReply replaces any failed collaborator call.
	ChatFallbackReply = "I'm sorry, I'm having trouble connecting right now. Please try again later."
	// ChatMaintenanceReply is what the stub collaborator always answers.
	ChatMaintenanceReply = "The AI Assistant is currently undergoing maintenance. Please check back later."
)

// Theme is the persisted colour-scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts only the two known values.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), true
	}
	return "", false
}
