package repo

import (
	"time"

	"gorm.io/gorm"

	"github.com/goncalvesethan/park-manager-api/app/models"
)

type ParkRepository struct{ db *gorm.DB }

func NewParkRepository(db *gorm.DB) *ParkRepository { return &ParkRepository{db: db} }

func (r *ParkRepository) Create(p *models.Park) error { return r.db.Create(p).Error }

func (r *ParkRepository) ListActive() ([]models.Park, error) {
	var parks []models.Park
	if err := r.db.Where("deleted_at IS NULL").Find(&parks).Error; err != nil {
		return nil, err
	}
	return parks, nil
}

func (r *ParkRepository) FindByID(id uint) (*models.Park, error) {
	var p models.Park
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ParkRepository) Save(p *models.Park) error { return r.db.Save(p).Error }

func (r *ParkRepository) SoftDelete(id uint) error {
	now := time.Now()
	res := r.db.Model(&models.Park{}).
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
