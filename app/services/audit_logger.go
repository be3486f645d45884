package services

import (
	"github.com/rs/zerolog"

	"github.com/goncalvesethan/park-manager-api/app/models"
	"github.com/goncalvesethan/park-manager-api/app/repo"
)

// AuditLogger records dispatch events as Log rows. It is strictly
// fire-and-forget: a failed write is reported on the process logger and
// must never surface to the operation that triggered it.
type AuditLogger struct {
	logs     *repo.LogRepository
	fallback zerolog.Logger
}

func NewAuditLogger(logs *repo.LogRepository, fallback zerolog.Logger) *AuditLogger {
	return &AuditLogger{logs: logs, fallback: fallback}
}

func (a *AuditLogger) Record(logType, resource, method, message string) {
	l := &models.Log{Type: logType, Resource: resource, Method: method, Message: message}
	if err := a.logs.Create(l); err != nil {
		a.fallback.Warn().Err(err).Str("resource", resource).Str("method", method).Msg("audit write failed")
	}
}

func (a *AuditLogger) Info(resource, method, message string) {
	a.Record("info", resource, method, message)
}

func (a *AuditLogger) Error(resource, method, message string) {
	a.Record("error", resource, method, message)
}
