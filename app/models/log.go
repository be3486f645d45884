package models

import "time"

// Log is an audit entry written by the dispatch engine. Failures to
// persist one are never allowed to fail the operation that produced it.
type Log struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Type      string     `gorm:"size:50;not null" json:"type"`
	Resource  string     `gorm:"size:50;not null" json:"resource"`
	Method    string     `gorm:"size:100;not null" json:"method"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}
