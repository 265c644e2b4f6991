package model

type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	IsOnline       bool   `json:"is_online"`
	LastOnline     string `json:"last_online,omitempty"`
}

type GetMeRequest struct{}

type GetMeResponse User

type GetUserRequest struct {
	UserID string `json:"user_id"`
}

type GetUserResponse User

type UpdateProfileRequest struct {
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
}

type UpdateProfileResponse struct{}

type UpdateFCMTokenRequest struct {
	Token string `json:"token"`
}

type UpdateFCMTokenResponse struct{}
