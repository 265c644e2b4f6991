package model

type PointsEntry struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Amount    int64  `json:"amount"`
	Details   string `json:"details,omitempty"`
	CreatedAt string `json:"created_at"`
}

type GetPointsRequest struct{}

type GetPointsResponse struct {
	Balance int64         `json:"balance"`
	Entries []PointsEntry `json:"entries"`
}

type RedeemPointsRequest struct {
	Type    string `json:"type"`
	Amount  int64  `json:"amount"`
	Details string `json:"details"`
}

type RedeemPointsResponse struct {
	Balance int64 `json:"balance"`
}
