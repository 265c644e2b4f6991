package model

type FriendRequest struct {
	Sender    User   `json:"sender"`
	CreatedAt string `json:"created_at"`
}

type SendFriendRequestRequest struct {
	UserID string `json:"user_id"`
}

type SendFriendRequestResponse struct{}

type AcceptFriendRequestRequest struct {
	UserID string `json:"user_id"`
}

type AcceptFriendRequestResponse struct{}

type RejectFriendRequestRequest struct {
	UserID string `json:"user_id"`
}

type RejectFriendRequestResponse struct{}

type GetPendingRequestsRequest struct{}

type GetPendingRequestsResponse struct {
	Requests []FriendRequest `json:"requests"`
}

type GetFriendsRequest struct{}

type GetFriendsResponse struct {
	Friends []User `json:"friends"`
}
