package models

import "time"

const (
	IncidentStatusOpen   = "open"
	IncidentStatusClosed = "closed"
)

// Incident is a problem reported by a user against a device.
type Incident struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ReporterID  uint       `gorm:"index;not null" json:"reporterId"`
	DeviceID    uint       `gorm:"index;not null" json:"deviceId"`
	Type        string     `gorm:"size:50;not null" json:"type"`
	Status      string     `gorm:"size:50;not null;default:open" json:"status"`
	Description string     `gorm:"type:text" json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt"`
}
