package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/goncalvesethan/park-manager-api/app/models"
	"github.com/goncalvesethan/park-manager-api/app/repo"
)

type fixture struct {
	db      *gorm.DB
	actions *ActionService
	devices *DeviceService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.Park{}, &models.Room{}, &models.Device{},
		&models.User{}, &models.Incident{}, &models.Action{}, &models.Log{},
	))

	audit := NewAuditLogger(repo.NewLogRepository(gdb), zerolog.Nop())
	devices := NewDeviceService(repo.NewDeviceRepository(gdb))
	actions := NewActionService(repo.NewActionRepository(gdb), devices, audit)
	return &fixture{db: gdb, actions: actions, devices: devices}
}

func (f *fixture) createDevice(t *testing.T, mac string) *models.Device {
	t.Helper()
	d := &models.Device{ParkID: 1, RoomID: 1, Name: "test-device", MacAddress: mac}
	require.NoError(t, f.devices.Create(d))
	return d
}
