package model

type OnlineRequest struct{}

type OnlineResponse struct{}

type OfflineRequest struct {
	// LastOnline is the client-observed timestamp in unix seconds. Zero
	// means the server takes its own clock.
	LastOnline int64 `json:"last_online"`
}

type OfflineResponse struct{}

type HeartbeatRequest struct{}

type HeartbeatResponse struct{}
