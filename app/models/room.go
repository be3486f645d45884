package models

import "time"

// Room belongs to a park and hosts devices.
type Room struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ParkID     uint       `gorm:"index;not null" json:"parkId"`
	Name       string     `gorm:"size:50;not null" json:"name"`
	Type       string     `gorm:"size:50;not null" json:"type"`
	Capacity   int        `gorm:"not null" json:"capacity"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	DisabledAt *time.Time `json:"disabledAt"`
	DeletedAt  *time.Time `json:"deletedAt"`
}
