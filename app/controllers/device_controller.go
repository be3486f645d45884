package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/goncalvesethan/park-manager-api/app/models"
	"github.com/goncalvesethan/park-manager-api/app/services"
)

type DeviceController struct {
	Devices  *services.DeviceService
	Presence *services.Presence
}

func NewDeviceController(devices *services.DeviceService, presence *services.Presence) *DeviceController {
	return &DeviceController{Devices: devices, Presence: presence}
}

func (c *DeviceController) GetAll(w http.ResponseWriter, r *http.Request) {
	devices, err := c.Devices.ListActive()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, devices)
}

func (c *DeviceController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	d, err := c.Devices.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Device not found !"))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (c *DeviceController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.Device
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MacAddress == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	req.ID = 0
	if err := c.Devices.Create(&req); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/devices/%d", req.ID))
	writeJSON(w, http.StatusCreated, req)
}

func (c *DeviceController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var req models.Device
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	d, err := c.Devices.Update(id, &req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Device not found !"))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// UpdateByMAC handles PUT /devices/mac/{mac}: a device reporting its
// own hardware facts. Unauthenticated, like the dispatch endpoints.
func (c *DeviceController) UpdateByMAC(w http.ResponseWriter, r *http.Request) {
	mac := r.PathValue("mac")
	var req models.Device
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	d, err := c.Devices.UpdateByMAC(mac, &req)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	c.Presence.Touch(r.Context(), d.MacAddress)
	writeJSON(w, http.StatusOK, d)
}

// SetOffline handles PATCH /devices/mac/{mac}/offline: the device's IP
// address is cleared, which marks it offline.
func (c *DeviceController) SetOffline(w http.ResponseWriter, r *http.Request) {
	mac := r.PathValue("mac")
	d, err := c.Devices.SetOfflineByMAC(mac)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Online handles GET /devices/online: the MAC addresses that have
// polled within the presence TTL. Requires redis; reports disabled
// tracking otherwise.
func (c *DeviceController) Online(w http.ResponseWriter, r *http.Request) {
	if !c.Presence.Enabled() {
		writeJSON(w, http.StatusOK, map[string]any{"enabled": false})
		return
	}
	macs, err := c.Presence.Online(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"enabled":       true,
		"onlineDevices": macs,
		"count":         len(macs),
	})
}

func (c *DeviceController) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := c.Devices.SoftDelete(id); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
