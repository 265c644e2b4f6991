package entity

const (
	NotificationTypeNewMessage    = "new_message"
	NotificationTypeFriendRequest = "friend_request"
	NotificationTypeTreeReminder  = "tree_reminder"
)

type Notification struct {
	SnowFlakeBase
	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Type   string
	Data   Map
	IsRead bool
}
