package model

// CallToken is the object embedded in a call token. The media client
// presents it when joining the channel.
type CallToken struct {
	Channel string `json:"channel"`
	UserID  string `json:"user_id"`
}

type IssueCallTokenRequest struct {
	FriendID string `json:"friend_id"`
}

type IssueCallTokenResponse struct {
	Channel   string `json:"channel"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}
