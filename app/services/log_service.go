package services

import (
	"github.com/goncalvesethan/park-manager-api/app/models"
	"github.com/goncalvesethan/park-manager-api/app/repo"
)

type LogService struct{ logs *repo.LogRepository }

func NewLogService(logs *repo.LogRepository) *LogService { return &LogService{logs: logs} }

func (s *LogService) ListActive() ([]models.Log, error) { return s.logs.ListActive() }

func (s *LogService) GetByID(id uint) (*models.Log, error) { return s.logs.FindByID(id) }

func (s *LogService) SoftDelete(id uint) error { return s.logs.SoftDelete(id) }
