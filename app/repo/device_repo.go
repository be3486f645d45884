package repo

import (
	"time"

	"gorm.io/gorm"

	"github.com/goncalvesethan/park-manager-api/app/models"
)

type DeviceRepository struct{ db *gorm.DB }

func NewDeviceRepository(db *gorm.DB) *DeviceRepository { return &DeviceRepository{db: db} }

func (r *DeviceRepository) Create(d *models.Device) error { return r.db.Create(d).Error }

func (r *DeviceRepository) ListActive() ([]models.Device, error) {
	var devices []models.Device
	if err := r.db.Where("deleted_at IS NULL").Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

func (r *DeviceRepository) FindByID(id uint) (*models.Device, error) {
	var d models.Device
	if err := r.db.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// FindByMAC resolves the unique non-deleted device carrying the given
// hardware address. Comparison is exact; no normalization is applied.
func (r *DeviceRepository) FindByMAC(mac string) (*models.Device, error) {
	var d models.Device
	if err := r.db.Where("mac_address = ? AND deleted_at IS NULL", mac).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeviceRepository) Save(d *models.Device) error { return r.db.Save(d).Error }

func (r *DeviceRepository) SoftDelete(id uint) error {
	now := time.Now()
	res := r.db.Model(&models.Device{}).
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
