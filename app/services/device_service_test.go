package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/goncalvesethan/park-manager-api/app/models"
)

func TestResolveByMACIsExactMatch(t *testing.T) {
	f := newFixture(t)
	f.createDevice(t, "AA:BB:CC:DD:EE:FF")

	d, err := f.devices.ResolveByMAC("AA:BB:CC:DD:EE:FF")
	require.NoError(t, err)
	require.Equal(t, "AA:BB:CC:DD:EE:FF", d.MacAddress)

	// No normalization: a lowercase variant is a different address.
	_, err = f.devices.ResolveByMAC("aa:bb:cc:dd:ee:ff")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestResolveByMACExcludesSoftDeleted(t *testing.T) {
	f := newFixture(t)
	d := f.createDevice(t, "AA:BB:CC:DD:EE:FF")
	require.NoError(t, f.devices.SoftDelete(d.ID))

	_, err := f.devices.ResolveByMAC("AA:BB:CC:DD:EE:FF")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSetOfflineClearsIPAddress(t *testing.T) {
	f := newFixture(t)
	ip := "10.0.0.12"
	d := &models.Device{ParkID: 1, RoomID: 1, MacAddress: "AA:BB:CC:DD:EE:FF", IpAddress: &ip}
	require.NoError(t, f.devices.Create(d))
	require.True(t, d.IsOnline())

	got, err := f.devices.SetOfflineByMAC(d.MacAddress)
	require.NoError(t, err)
	require.Nil(t, got.IpAddress)
	require.False(t, got.IsOnline())
}

func TestUpdateByMACKeepsAssignments(t *testing.T) {
	f := newFixture(t)
	d := &models.Device{ParkID: 3, RoomID: 7, MacAddress: "AA:BB:CC:DD:EE:FF"}
	require.NoError(t, f.devices.Create(d))

	ip := "10.0.0.9"
	got, err := f.devices.UpdateByMAC(d.MacAddress, &models.Device{Brand: "dell", IpAddress: &ip})
	require.NoError(t, err)
	require.Equal(t, "dell", got.Brand)
	require.Equal(t, uint(3), got.ParkID)
	require.Equal(t, uint(7), got.RoomID)
	require.True(t, got.IsOnline())
}
