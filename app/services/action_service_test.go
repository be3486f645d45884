package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/goncalvesethan/park-manager-api/app/models"
)

const testMAC = "AA:BB:CC:DD:EE:FF"

func TestCreateAlwaysStartsPending(t *testing.T) {
	f := newFixture(t)
	d := f.createDevice(t, testMAC)

	a, err := f.actions.Create(d.ID, "reboot")
	require.NoError(t, err)
	require.Equal(t, models.ActionStatusPending, a.Status)
	require.Equal(t, d.ID, a.DeviceID)
	require.False(t, a.CreatedAt.IsZero())
}

func TestCreateDoesNotValidateDeviceExists(t *testing.T) {
	f := newFixture(t)

	// The store's referential constraint is the only guard; with none
	// configured the insert goes through.
	a, err := f.actions.Create(999, "reboot")
	require.NoError(t, err)
	require.Equal(t, models.ActionStatusPending, a.Status)
}

func TestNextPendingIdleDeviceIsNotAnError(t *testing.T) {
	f := newFixture(t)
	f.createDevice(t, testMAC)

	a, err := f.actions.NextPendingForMAC(testMAC)
	require.NoError(t, err)
	require.Nil(t, a)
}

func TestNextPendingUnknownDevice(t *testing.T) {
	f := newFixture(t)

	_, err := f.actions.NextPendingForMAC("00:00:00:00:00:00")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCompleteUnknownDevice(t *testing.T) {
	f := newFixture(t)

	_, err := f.actions.CompleteNextPendingForMAC("00:00:00:00:00:00")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCompleteWithNothingPendingIsAnError(t *testing.T) {
	f := newFixture(t)
	f.createDevice(t, testMAC)

	_, err := f.actions.CompleteNextPendingForMAC(testMAC)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDispatchLifecycle(t *testing.T) {
	f := newFixture(t)
	d := f.createDevice(t, testMAC)

	created, err := f.actions.Create(d.ID, "reboot")
	require.NoError(t, err)
	require.Equal(t, models.ActionStatusPending, created.Status)

	polled, err := f.actions.NextPendingForMAC(testMAC)
	require.NoError(t, err)
	require.NotNil(t, polled)
	require.Equal(t, created.ID, polled.ID)

	done, err := f.actions.CompleteNextPendingForMAC(testMAC)
	require.NoError(t, err)
	require.Equal(t, created.ID, done.ID)
	require.Equal(t, models.ActionStatusDone, done.Status)

	// Completion is not idempotent.
	_, err = f.actions.CompleteNextPendingForMAC(testMAC)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	idle, err := f.actions.NextPendingForMAC(testMAC)
	require.NoError(t, err)
	require.Nil(t, idle)
}

func TestTwoPendingActionsDrainOneAtATime(t *testing.T) {
	f := newFixture(t)
	d := f.createDevice(t, testMAC)

	a1, err := f.actions.Create(d.ID, "reboot")
	require.NoError(t, err)
	a2, err := f.actions.Create(d.ID, "lock")
	require.NoError(t, err)

	done, err := f.actions.CompleteNextPendingForMAC(testMAC)
	require.NoError(t, err)
	require.Equal(t, a1.ID, done.ID)

	next, err := f.actions.NextPendingForMAC(testMAC)
	require.NoError(t, err)
	require.NotNil(t, next)
	require.Equal(t, a2.ID, next.ID)
	require.Equal(t, models.ActionStatusPending, next.Status)
}

func TestSoftDeleteHidesFromDispatchButNotFromIDLookup(t *testing.T) {
	f := newFixture(t)
	d := f.createDevice(t, testMAC)

	a, err := f.actions.Create(d.ID, "reboot")
	require.NoError(t, err)
	require.NoError(t, f.actions.SoftDelete(a.ID))

	polled, err := f.actions.NextPendingForMAC(testMAC)
	require.NoError(t, err)
	require.Nil(t, polled)

	got, err := f.actions.GetByID(a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DeletedAt)
	require.Equal(t, models.ActionStatusPending, got.Status)

	list, err := f.actions.ListActive()
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestSoftDeleteUnknownAction(t *testing.T) {
	f := newFixture(t)
	require.ErrorIs(t, f.actions.SoftDelete(404), gorm.ErrRecordNotFound)
}

func TestAuditFailureNeverFailsDispatch(t *testing.T) {
	f := newFixture(t)
	d := f.createDevice(t, testMAC)

	// Break the audit sink's table; the dispatch operations must keep
	// working regardless.
	require.NoError(t, f.db.Migrator().DropTable(&models.Log{}))

	a, err := f.actions.Create(d.ID, "reboot")
	require.NoError(t, err)

	done, err := f.actions.CompleteNextPendingForMAC(testMAC)
	require.NoError(t, err)
	require.Equal(t, a.ID, done.ID)
	require.Equal(t, models.ActionStatusDone, done.Status)
}

func TestDispatchRecordsAuditTrail(t *testing.T) {
	f := newFixture(t)
	d := f.createDevice(t, testMAC)

	_, err := f.actions.Create(d.ID, "reboot")
	require.NoError(t, err)
	_, err = f.actions.CompleteNextPendingForMAC(testMAC)
	require.NoError(t, err)

	var logs []models.Log
	require.NoError(t, f.db.Find(&logs).Error)
	require.Len(t, logs, 2)
	require.Equal(t, "info", logs[0].Type)
	require.Equal(t, "Action", logs[0].Resource)
}
