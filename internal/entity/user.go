package entity

import "time"

type User struct {
	Base
	Name           string `gorm:"unique"`
	Email          string `gorm:"unique"`
	HashedPassword string
	ProfilePicture string
	FCMToken       string
	IsOnline       bool
	LastOnline     time.Time
}
