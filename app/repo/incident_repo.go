package repo

import (
	"time"

	"gorm.io/gorm"

	"github.com/goncalvesethan/park-manager-api/app/models"
)

type IncidentRepository struct{ db *gorm.DB }

func NewIncidentRepository(db *gorm.DB) *IncidentRepository { return &IncidentRepository{db: db} }

func (r *IncidentRepository) Create(i *models.Incident) error { return r.db.Create(i).Error }

func (r *IncidentRepository) ListActive() ([]models.Incident, error) {
	var incidents []models.Incident
	if err := r.db.Where("deleted_at IS NULL").Find(&incidents).Error; err != nil {
		return nil, err
	}
	return incidents, nil
}

func (r *IncidentRepository) FindByID(id uint) (*models.Incident, error) {
	var i models.Incident
	if err := r.db.First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *IncidentRepository) Save(i *models.Incident) error { return r.db.Save(i).Error }

func (r *IncidentRepository) SoftDelete(id uint) error {
	now := time.Now()
	res := r.db.Model(&models.Incident{}).
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
