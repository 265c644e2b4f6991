package model

type Notification struct {
	ID        int64          `json:"id"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data,omitempty"`
	IsRead    bool           `json:"is_read"`
	CreatedAt string         `json:"created_at"`
}

type GetMyNotificationsRequest struct{}

type GetMyNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}

type MarkNotificationReadRequest struct {
	ID int64 `json:"id"`
}

type MarkNotificationReadResponse struct{}

type ServeNotificationProxyRequest struct{}
