package entity

type Post struct {
	Base
	AuthorID string `gorm:"index"`
	Author   User   `gorm:"foreignKey:AuthorID"`

	Caption  string
	ImageURL string
}

type PostComment struct {
	Base
	PostID   string `gorm:"index"`
	Post     Post   `gorm:"foreignKey:PostID"`
	AuthorID string
	Author   User `gorm:"foreignKey:AuthorID"`

	Content string
}

type PostReaction struct {
	PostID string `gorm:"primaryKey"`
	Post   Post   `gorm:"foreignKey:PostID"`
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	Type string
}
