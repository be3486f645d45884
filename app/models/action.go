package models

import "time"

const (
	ActionStatusPending = "pending"
	ActionStatusDone    = "done"
)

// Action is a unit of remote maintenance work addressed to exactly one
// device (reboot, lock, reimage...). Devices poll for the next pending
// action by MAC address and report completion; status only ever moves
// pending -> done.
type Action struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	DeviceID  uint       `gorm:"index;not null" json:"deviceId"`
	Type      string     `gorm:"size:50;not null" json:"type"`
	Status    string     `gorm:"size:50;not null;default:pending" json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}
