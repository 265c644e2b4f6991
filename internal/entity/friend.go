package entity

import "time"

// FriendRequest is keyed by the recipient first so pending requests of a
// user are a single-prefix scan.
type FriendRequest struct {
	UserID   string `gorm:"primaryKey"`
	User     User   `gorm:"foreignKey:UserID"`
	SenderID string `gorm:"primaryKey"`
	Sender   User   `gorm:"foreignKey:SenderID"`

	CreatedAt time.Time
}

// Friendship edges are stored mirrored, one row per direction.
type Friendship struct {
	UserID   string `gorm:"primaryKey"`
	User     User   `gorm:"foreignKey:UserID"`
	FriendID string `gorm:"primaryKey"`
	Friend   User   `gorm:"foreignKey:FriendID"`

	CreatedAt time.Time
}
