package model

type Tree struct {
	ID             string   `json:"id"`
	Stage          string   `json:"stage"`
	WaterHistory   []string `json:"water_history"`
	Retired        bool     `json:"retired"`
	ReminderSet    bool     `json:"reminder_set"`
	ReminderHour   int      `json:"reminder_hour"`
	ReminderMinute int      `json:"reminder_minute"`
	CreatedAt      string   `json:"created_at"`
}

type WaterTreeRequest struct {
	// Date is the user-local calendar date (YYYY-MM-DD). Empty means
	// the server date.
	Date string `json:"date"`
}

type WaterTreeResponse struct {
	Tree         Tree  `json:"tree"`
	PointsEarned int64 `json:"points_earned"`
}

type SetReminderRequest struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

type SetReminderResponse struct{}

type GetTreesRequest struct{}

type GetTreesResponse struct {
	ActiveTree   *Tree  `json:"active_tree,omitempty"`
	Trees        []Tree `json:"trees"`
	WateredToday bool   `json:"watered_today"`
}
