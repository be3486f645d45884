package models

import (
	"encoding/json"
	"time"
)

// Device is a managed workstation. MacAddress is the only external
// handle the dispatch protocol knows; the numeric id stays internal.
// A device is considered online as long as it has an IP address.
type Device struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ParkID     uint       `gorm:"index;not null" json:"parkId"`
	RoomID     uint       `gorm:"index;not null" json:"roomId"`
	Name       string     `gorm:"size:50" json:"name"`
	Brand      string     `gorm:"size:50" json:"brand"`
	Processor  string     `gorm:"size:50" json:"processor"`
	RAM        *int       `json:"ram"`
	Storage    *int       `json:"storage"`
	MacAddress string     `gorm:"uniqueIndex;size:191;not null" json:"macAddress"`
	IpAddress  *string    `gorm:"size:45" json:"ipAddress"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	DisabledAt *time.Time `json:"disabledAt"`
	DeletedAt  *time.Time `json:"deletedAt"`
}

func (d *Device) IsOnline() bool {
	return d.IpAddress != nil && *d.IpAddress != ""
}

func (d Device) MarshalJSON() ([]byte, error) {
	type alias Device
	return json.Marshal(struct {
		alias
		IsOnline bool `json:"isOnline"`
	}{alias(d), d.IsOnline()})
}
