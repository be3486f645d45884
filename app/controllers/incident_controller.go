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

type IncidentController struct{ Incidents *services.IncidentService }

func NewIncidentController(incidents *services.IncidentService) *IncidentController {
	return &IncidentController{Incidents: incidents}
}

func (c *IncidentController) GetAll(w http.ResponseWriter, r *http.Request) {
	incidents, err := c.Incidents.ListActive()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, incidents)
}

func (c *IncidentController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	i, err := c.Incidents.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Incident not found !"))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, i)
}

// Create opens an incident. The status always starts open, whatever
// the request body said.
func (c *IncidentController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.Incident
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ReporterID == 0 || req.DeviceID == 0 || req.Type == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	req.ID = 0
	if err := c.Incidents.Create(&req); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/incidents/%d", req.ID))
	writeJSON(w, http.StatusCreated, req)
}

func (c *IncidentController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var req models.Incident
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	i, err := c.Incidents.Update(id, &req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Incident not found !"))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, i)
}

// SetAsClosed handles PATCH /incidents/{id}/close.
func (c *IncidentController) SetAsClosed(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	i, err := c.Incidents.Close(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Incident not found !"))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, i)
}

func (c *IncidentController) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := c.Incidents.SoftDelete(id); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
