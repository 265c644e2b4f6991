package event

import "github.com/bigex/backend/internal/model"

// MESSAGE CREATED EVENT
type MessageCreatedEvent model.Message

func (*MessageCreatedEvent) Op() string {
	return "message_created"
}

// MESSAGE READ EVENT
type MessageReadEvent struct {
	MessageID int64 `json:"message_id"`
}

func (*MessageReadEvent) Op() string {
	return "message_read"
}

// REACTION CHANGED EVENT
type ReactionChangedEvent struct {
	MessageID int64  `json:"message_id"`
	UserID    string `json:"user_id"`
	Emoji     string `json:"emoji,omitempty"`
}

func (*ReactionChangedEvent) Op() string {
	return "reaction_changed"
}
