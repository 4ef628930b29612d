package types

// Notification represents an event pushed to UI clients over the notify websocket.
type Notification struct {
	Type    string         `json:"type,omitempty"`
	Title   string         `json:"title,omitempty"`
	Message string         `json:"message,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// Notification types sent by the share controller.
const (
	NotifyTypeShareStarted = "share_started"
	NotifyTypeShareStopped = "share_stopped"
)
