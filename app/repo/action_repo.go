package repo

import (
	"time"

	"gorm.io/gorm"

	"github.com/goncalvesethan/park-manager-api/app/models"
)

type ActionRepository struct{ db *gorm.DB }

func NewActionRepository(db *gorm.DB) *ActionRepository { return &ActionRepository{db: db} }

func (r *ActionRepository) Create(a *models.Action) error { return r.db.Create(a).Error }

// ListActive returns every non-deleted action regardless of status or device.
func (r *ActionRepository) ListActive() ([]models.Action, error) {
	var actions []models.Action
	if err := r.db.Where("deleted_at IS NULL").Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}

// FindByID looks an action up by primary key. Soft-deleted rows are
// still visible here, unlike in list and dispatch queries.
func (r *ActionRepository) FindByID(id uint) (*models.Action, error) {
	var a models.Action
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// FirstPendingForDevice returns the oldest pending, non-deleted action
// queued for the device. Queue order is ascending id.
func (r *ActionRepository) FirstPendingForDevice(deviceID uint) (*models.Action, error) {
	var a models.Action
	err := r.db.
		Where("device_id = ? AND status = ? AND deleted_at IS NULL", deviceID, models.ActionStatusPending).
		Order("id ASC").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// MarkDone flips a single action from pending to done. The status guard
// in the WHERE clause makes the transition a compare-and-swap: of two
// racing completers, exactly one sees RowsAffected == 1 and the other
// gets ErrRecordNotFound.
func (r *ActionRepository) MarkDone(id uint) (*models.Action, error) {
	now := time.Now()
	res := r.db.Model(&models.Action{}).
		Where("id = ? AND status = ? AND deleted_at IS NULL", id, models.ActionStatusPending).
		Updates(map[string]any{
			"status":     models.ActionStatusDone,
			"updated_at": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// SoftDelete retires an action without touching its status. The row
// stays readable by id but disappears from lists and dispatch.
func (r *ActionRepository) SoftDelete(id uint) error {
	now := time.Now()
	res := r.db.Model(&models.Action{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"deleted_at": now,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
