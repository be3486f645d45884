package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goncalvesethan/park-manager-api/app/models"
)

func TestDeviceCRUDOverHTTP(t *testing.T) {
	srv, token := newTestServer(t)

	d := createDevice(t, srv, token, deviceMAC)
	require.NotZero(t, d.ID)

	resp := doRequest(t, http.MethodGet, fmt.Sprintf("%s/devices/%d", srv.URL, d.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got models.Device
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	resp.Body.Close()
	require.Equal(t, deviceMAC, got.MacAddress)

	resp = doRequest(t, http.MethodDelete, fmt.Sprintf("%s/devices/%d", srv.URL, d.ID), token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, srv.URL+"/devices", token, nil)
	var list []models.Device
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	require.Empty(t, list)
}

func TestDeviceSelfReportAndOffline(t *testing.T) {
	srv, token := newTestServer(t)
	createDevice(t, srv, token, deviceMAC)

	// Devices report their own facts without credentials.
	resp := doRequest(t, http.MethodPut, srv.URL+"/devices/mac/"+deviceMAC, "", map[string]any{
		"brand": "dell", "ipAddress": "10.0.0.12",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		models.Device
		IsOnline bool `json:"isOnline"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	require.True(t, body.IsOnline)
	require.Equal(t, "dell", body.Brand)

	resp = doRequest(t, http.MethodPatch, srv.URL+"/devices/mac/"+deviceMAC+"/offline", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	require.False(t, body.IsOnline)
	require.Nil(t, body.IpAddress)
}

func TestOnlineListingWithoutRedis(t *testing.T) {
	srv, token := newTestServer(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/devices/online", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	require.Equal(t, false, body["enabled"])
}

func TestUnknownDeviceByIDAnswers404(t *testing.T) {
	srv, token := newTestServer(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/devices/9999", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
