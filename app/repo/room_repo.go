package repo

import (
	"time"

	"gorm.io/gorm"

	"github.com/goncalvesethan/park-manager-api/app/models"
)

type RoomRepository struct{ db *gorm.DB }

func NewRoomRepository(db *gorm.DB) *RoomRepository { return &RoomRepository{db: db} }

func (r *RoomRepository) Create(room *models.Room) error { return r.db.Create(room).Error }

func (r *RoomRepository) ListActive() ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.Where("deleted_at IS NULL").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) FindByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) Save(room *models.Room) error { return r.db.Save(room).Error }

func (r *RoomRepository) SoftDelete(id uint) error {
	now := time.Now()
	res := r.db.Model(&models.Room{}).
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
