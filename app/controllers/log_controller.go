package controllers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/goncalvesethan/park-manager-api/app/services"
)

type LogController struct{ Logs *services.LogService }

func NewLogController(logs *services.LogService) *LogController {
	return &LogController{Logs: logs}
}

func (c *LogController) GetAll(w http.ResponseWriter, r *http.Request) {
	logs, err := c.Logs.ListActive()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (c *LogController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	l, err := c.Logs.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Log not found !"))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (c *LogController) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := c.Logs.SoftDelete(id); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
