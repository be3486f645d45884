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

type ParkController struct{ Parks *services.ParkService }

func NewParkController(parks *services.ParkService) *ParkController {
	return &ParkController{Parks: parks}
}

func (c *ParkController) GetAll(w http.ResponseWriter, r *http.Request) {
	parks, err := c.Parks.ListActive()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, parks)
}

func (c *ParkController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	p, err := c.Parks.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Park not found !"))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *ParkController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.Park
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Location == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	req.ID = 0
	if err := c.Parks.Create(&req); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/parks/%d", req.ID))
	writeJSON(w, http.StatusCreated, req)
}

func (c *ParkController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var req models.Park
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	p, err := c.Parks.Update(id, &req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Park not found !"))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *ParkController) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := c.Parks.SoftDelete(id); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
