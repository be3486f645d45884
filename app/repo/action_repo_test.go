package repo

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/goncalvesethan/park-manager-api/app/models"
)

func TestFirstPendingForDeviceOrdersByAscendingID(t *testing.T) {
	r := NewActionRepository(newTestDB(t))

	a1 := &models.Action{DeviceID: 1, Type: "reboot", Status: models.ActionStatusPending}
	a2 := &models.Action{DeviceID: 1, Type: "lock", Status: models.ActionStatusPending}
	require.NoError(t, r.Create(a1))
	require.NoError(t, r.Create(a2))

	got, err := r.FirstPendingForDevice(1)
	require.NoError(t, err)
	require.Equal(t, a1.ID, got.ID)
}

func TestFirstPendingForDeviceSkipsDoneAndDeleted(t *testing.T) {
	r := NewActionRepository(newTestDB(t))

	done := &models.Action{DeviceID: 1, Type: "reboot", Status: models.ActionStatusDone}
	deleted := &models.Action{DeviceID: 1, Type: "lock", Status: models.ActionStatusPending}
	pending := &models.Action{DeviceID: 1, Type: "reimage", Status: models.ActionStatusPending}
	require.NoError(t, r.Create(done))
	require.NoError(t, r.Create(deleted))
	require.NoError(t, r.Create(pending))
	require.NoError(t, r.SoftDelete(deleted.ID))

	got, err := r.FirstPendingForDevice(1)
	require.NoError(t, err)
	require.Equal(t, pending.ID, got.ID)
}

func TestFirstPendingForDeviceIgnoresOtherDevices(t *testing.T) {
	r := NewActionRepository(newTestDB(t))

	other := &models.Action{DeviceID: 2, Type: "reboot", Status: models.ActionStatusPending}
	require.NoError(t, r.Create(other))

	_, err := r.FirstPendingForDevice(1)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMarkDoneIsConditionalOnPendingStatus(t *testing.T) {
	r := NewActionRepository(newTestDB(t))

	a := &models.Action{DeviceID: 1, Type: "reboot", Status: models.ActionStatusPending}
	require.NoError(t, r.Create(a))

	done, err := r.MarkDone(a.ID)
	require.NoError(t, err)
	require.Equal(t, models.ActionStatusDone, done.Status)

	// The same transition cannot fire twice: the status guard makes the
	// second caller the deterministic loser.
	_, err = r.MarkDone(a.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMarkDoneSkipsSoftDeleted(t *testing.T) {
	r := NewActionRepository(newTestDB(t))

	a := &models.Action{DeviceID: 1, Type: "reboot", Status: models.ActionStatusPending}
	require.NoError(t, r.Create(a))
	require.NoError(t, r.SoftDelete(a.ID))

	_, err := r.MarkDone(a.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindByIDStillSeesSoftDeleted(t *testing.T) {
	r := NewActionRepository(newTestDB(t))

	a := &models.Action{DeviceID: 1, Type: "reboot", Status: models.ActionStatusPending}
	require.NoError(t, r.Create(a))
	require.NoError(t, r.SoftDelete(a.ID))

	got, err := r.FindByID(a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DeletedAt)
	require.Equal(t, models.ActionStatusPending, got.Status)

	actions, err := r.ListActive()
	require.NoError(t, err)
	require.Empty(t, actions)
}

func TestSoftDeleteUnknownID(t *testing.T) {
	r := NewActionRepository(newTestDB(t))
	require.ErrorIs(t, r.SoftDelete(42), gorm.ErrRecordNotFound)
}
