package dto

// CreateActionRequest carries a new action. A Status field, if present
// in the body, is accepted but ignored: actions always start pending.
type CreateActionRequest struct {
	DeviceID uint   `json:"deviceId"`
	Type     string `json:"type"`
	Status   string `json:"status,omitempty"`
}
