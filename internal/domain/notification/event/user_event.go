package event

import "github.com/bigex/backend/internal/model"

type UserStatus string

const (
	Online  = UserStatus("online")
	Offline = UserStatus("offline")
)

type ChangeUserStatusEvent struct {
	User model.User `json:"user"`
}

func (*ChangeUserStatusEvent) Op() string {
	return "change_status"
}
