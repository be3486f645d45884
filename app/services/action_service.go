package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/goncalvesethan/park-manager-api/app/models"
	"github.com/goncalvesethan/park-manager-api/app/repo"
)

// ActionService owns the action lifecycle: creation, single-next-pending
// dispatch by MAC address, completion and soft deletion. Each device has
// at most one action outstanding at a time from the protocol's point of
// view; the queue behind it drains in ascending-id order.
type ActionService struct {
	actions *repo.ActionRepository
	devices *DeviceService
	audit   *AuditLogger
}

func NewActionService(actions *repo.ActionRepository, devices *DeviceService, audit *AuditLogger) *ActionService {
	return &ActionService{actions: actions, devices: devices, audit: audit}
}

// Create queues a new action for a device. Status is always pending at
// creation, whatever the caller sent. The device id is taken as-is: the
// store's referential constraint is the only existence check.
func (s *ActionService) Create(deviceID uint, actionType string) (*models.Action, error) {
	a := &models.Action{DeviceID: deviceID, Type: actionType, Status: models.ActionStatusPending}
	if err := s.actions.Create(a); err != nil {
		s.audit.Error("Action", "ActionService.Create", fmt.Sprintf("failed to create action: %v", err))
		return nil, err
	}
	s.audit.Info("Action", "ActionService.Create", fmt.Sprintf("new action '%s' created for device %d", a.Type, a.DeviceID))
	return a, nil
}

func (s *ActionService) ListActive() ([]models.Action, error) { return s.actions.ListActive() }

// GetByID returns the action whether or not it has been soft-deleted.
func (s *ActionService) GetByID(id uint) (*models.Action, error) { return s.actions.FindByID(id) }

// NextPendingForMAC returns the action the device should execute next,
// or (nil, nil) when it has none, which is the steady state of an idle
// device. An unknown MAC is an error.
func (s *ActionService) NextPendingForMAC(mac string) (*models.Action, error) {
	device, err := s.devices.ResolveByMAC(mac)
	if err != nil {
		return nil, err
	}
	a, err := s.actions.FirstPendingForDevice(device.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CompleteNextPendingForMAC marks the device's pending action as done.
// Unlike the read side, having nothing to complete is an error here: a
// device only reports completion after being handed an action. When two
// completions race, the conditional update in the repository guarantees
// exactly one wins and the other observes ErrRecordNotFound.
func (s *ActionService) CompleteNextPendingForMAC(mac string) (*models.Action, error) {
	device, err := s.devices.ResolveByMAC(mac)
	if err != nil {
		s.audit.Error("Action", "ActionService.CompleteNextPendingForMAC", fmt.Sprintf("failed to complete action: %v", err))
		return nil, err
	}
	a, err := s.actions.FirstPendingForDevice(device.ID)
	if err != nil {
		s.audit.Error("Action", "ActionService.CompleteNextPendingForMAC", fmt.Sprintf("failed to complete action: %v", err))
		return nil, err
	}
	done, err := s.actions.MarkDone(a.ID)
	if err != nil {
		s.audit.Error("Action", "ActionService.CompleteNextPendingForMAC", fmt.Sprintf("failed to complete action %d: %v", a.ID, err))
		return nil, err
	}
	s.audit.Info("Action", "ActionService.CompleteNextPendingForMAC", fmt.Sprintf("action %d marked as done for device MAC %s", done.ID, mac))
	return done, nil
}

// SoftDelete retires an action. Status is left untouched; the row stays
// visible to GetByID only.
func (s *ActionService) SoftDelete(id uint) error {
	if err := s.actions.SoftDelete(id); err != nil {
		s.audit.Error("Action", "ActionService.SoftDelete", fmt.Sprintf("failed to soft-delete action %d: %v", id, err))
		return err
	}
	s.audit.Info("Action", "ActionService.SoftDelete", fmt.Sprintf("action %d soft-deleted", id))
	return nil
}
