package repo

import (
	"time"

	"gorm.io/gorm"

	"github.com/goncalvesethan/park-manager-api/app/models"
)

type LogRepository struct{ db *gorm.DB }

func NewLogRepository(db *gorm.DB) *LogRepository { return &LogRepository{db: db} }

func (r *LogRepository) Create(l *models.Log) error { return r.db.Create(l).Error }

func (r *LogRepository) ListActive() ([]models.Log, error) {
	var logs []models.Log
	if err := r.db.Where("deleted_at IS NULL").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *LogRepository) FindByID(id uint) (*models.Log, error) {
	var l models.Log
	if err := r.db.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LogRepository) SoftDelete(id uint) error {
	now := time.Now()
	res := r.db.Model(&models.Log{}).
		Where("id = ?", id).
		Updates(map[string]any{"deleted_at": now, "updated_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
