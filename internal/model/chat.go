package model

type MessageReaction struct {
	UserID string `json:"user_id"`
	Emoji  string `json:"emoji"`
}

type Message struct {
	ID         int64             `json:"id"`
	SenderID   string            `json:"sender_id"`
	ReceiverID string            `json:"receiver_id"`
	Content    string            `json:"content"`
	IsImage    bool              `json:"is_image"`
	IsRead     bool              `json:"is_read"`
	Reactions  []MessageReaction `json:"reactions,omitempty"`
	CreatedAt  string            `json:"created_at"`
}

type CreateMessageRequest struct {
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
	IsImage    bool   `json:"is_image"`
}

type CreateMessageResponse struct {
	ID int64 `json:"id"`
}

type MarkReadRequest struct {
	MessageID int64 `json:"message_id"`
}

type MarkReadResponse struct{}

type GetConversationRequest struct {
	FriendID string `json:"friend_id"`
}

type GetConversationResponse struct {
	Messages []Message `json:"messages"`
}

type GetUnreadCountRequest struct {
	FriendID string `json:"friend_id"`
}

type GetUnreadCountResponse struct {
	Count int64 `json:"count"`
}

type AddReactionRequest struct {
	MessageID int64  `json:"message_id"`
	Emoji     string `json:"emoji"`
}

type AddReactionResponse struct{}

type RemoveReactionRequest struct {
	MessageID int64 `json:"message_id"`
}

type RemoveReactionResponse struct{}
