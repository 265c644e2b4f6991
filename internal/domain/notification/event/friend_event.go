package event

import "github.com/bigex/backend/internal/model"

type FriendRequestEvent struct {
	Sender model.User `json:"sender"`
}

func (*FriendRequestEvent) Op() string {
	return "friend_request"
}

type FriendAcceptedEvent struct {
	Friend model.User `json:"friend"`
}

func (*FriendAcceptedEvent) Op() string {
	return "friend_accepted"
}
