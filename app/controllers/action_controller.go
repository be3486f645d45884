package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/goncalvesethan/park-manager-api/app/dto"
	"github.com/goncalvesethan/park-manager-api/app/services"
)

// ActionController exposes the dispatch protocol. The MAC-addressed
// poll and complete endpoints are unauthenticated: their callers are
// unattended devices that own nothing but a hardware address.
type ActionController struct {
	Actions  *services.ActionService
	Presence *services.Presence
}

func NewActionController(actions *services.ActionService, presence *services.Presence) *ActionController {
	return &ActionController{Actions: actions, Presence: presence}
}

// GetAll handles GET /actions.
func (c *ActionController) GetAll(w http.ResponseWriter, r *http.Request) {
	actions, err := c.Actions.ListActive()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, actions)
}

// GetByID handles GET /actions/{id}. Soft-deleted actions are still
// returned here; only lists and dispatch hide them.
func (c *ActionController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	a, err := c.Actions.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Action not found !"))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// GetDeviceAction handles GET /actions/mac/{mac}: the device poll. An
// idle device gets 200 with a null body; an unknown MAC gets 404.
func (c *ActionController) GetDeviceAction(w http.ResponseWriter, r *http.Request) {
	mac := r.PathValue("mac")
	a, err := c.Actions.NextPendingForMAC(mac)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Action not found !"))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	c.Presence.Touch(r.Context(), mac)
	writeJSON(w, http.StatusOK, a)
}

// Create handles POST /actions. Whatever status the caller supplies is
// ignored; a new action is always pending.
func (c *ActionController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DeviceID == 0 || req.Type == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	a, err := c.Actions.Create(req.DeviceID, req.Type)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/actions/%d", a.ID))
	writeJSON(w, http.StatusCreated, a)
}

// SetActionAsDone handles PATCH /actions/mac/{mac}: completion report.
// Both "unknown device" and "nothing pending" answer 500 here; the
// protocol has always conflated them on the write side.
func (c *ActionController) SetActionAsDone(w http.ResponseWriter, r *http.Request) {
	mac := r.PathValue("mac")
	a, err := c.Actions.CompleteNextPendingForMAC(mac)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// SoftDelete handles DELETE /actions/{id}.
func (c *ActionController) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := c.Actions.SoftDelete(id); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
