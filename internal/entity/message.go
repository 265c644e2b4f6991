package entity

type Message struct {
	SnowFlakeBase
	SenderID   string `gorm:"index:idx_messages_pair"`
	Sender     User   `gorm:"foreignKey:SenderID"`
	ReceiverID string `gorm:"index:idx_messages_pair"`
	Receiver   User   `gorm:"foreignKey:ReceiverID"`

	Content string
	IsImage bool
	IsRead  bool
}

type MessageReaction struct {
	MessageID int64  `gorm:"primaryKey"`
	UserID    string `gorm:"primaryKey"`
	User      User   `gorm:"foreignKey:UserID"`

	Emoji string
}
