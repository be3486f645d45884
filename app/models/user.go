package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Lastname     string     `gorm:"size:50;not null" json:"lastname"`
	Firstname    string     `gorm:"size:50;not null" json:"firstname"`
	Email        string     `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	IsAdmin      bool       `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DisabledAt   *time.Time `json:"disabledAt"`
	DeletedAt    *time.Time `json:"deletedAt"`
}
