package router

import (
	"net/http"

	"github.com/goncalvesethan/park-manager-api/app/controllers"
	"github.com/goncalvesethan/park-manager-api/app/middleware"
)

type Controllers struct {
	Health    *controllers.HealthController
	Auth      *controllers.AuthController
	Parks     *controllers.ParkController
	Rooms     *controllers.RoomController
	Devices   *controllers.DeviceController
	Actions   *controllers.ActionController
	Incidents *controllers.IncidentController
	Users     *controllers.UserController
	Logs      *controllers.LogController
}

// New builds the route table. The poll/complete/self-report endpoints
// addressed by MAC are public; everything else requires a bearer token.
func New(c Controllers, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	auth := func(h http.HandlerFunc) http.Handler { return mw.RequireAuth(h) }

	// public
	mux.HandleFunc("GET /health", c.Health.Health)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("GET /actions/mac/{mac}", c.Actions.GetDeviceAction)
	mux.HandleFunc("PATCH /actions/mac/{mac}", c.Actions.SetActionAsDone)
	mux.HandleFunc("PUT /devices/mac/{mac}", c.Devices.UpdateByMAC)
	mux.HandleFunc("PATCH /devices/mac/{mac}/offline", c.Devices.SetOffline)

	// actions
	mux.Handle("GET /actions", auth(c.Actions.GetAll))
	mux.Handle("GET /actions/{id}", auth(c.Actions.GetByID))
	mux.Handle("POST /actions", auth(c.Actions.Create))
	mux.Handle("DELETE /actions/{id}", auth(c.Actions.SoftDelete))

	// parks
	mux.Handle("GET /parks", auth(c.Parks.GetAll))
	mux.Handle("GET /parks/{id}", auth(c.Parks.GetByID))
	mux.Handle("POST /parks", auth(c.Parks.Create))
	mux.Handle("PUT /parks/{id}", auth(c.Parks.Update))
	mux.Handle("DELETE /parks/{id}", auth(c.Parks.SoftDelete))

	// rooms
	mux.Handle("GET /rooms", auth(c.Rooms.GetAll))
	mux.Handle("GET /rooms/{id}", auth(c.Rooms.GetByID))
	mux.Handle("POST /rooms", auth(c.Rooms.Create))
	mux.Handle("PUT /rooms/{id}", auth(c.Rooms.Update))
	mux.Handle("DELETE /rooms/{id}", auth(c.Rooms.SoftDelete))

	// devices
	mux.Handle("GET /devices", auth(c.Devices.GetAll))
	mux.Handle("GET /devices/online", auth(c.Devices.Online))
	mux.Handle("GET /devices/{id}", auth(c.Devices.GetByID))
	mux.Handle("POST /devices", auth(c.Devices.Create))
	mux.Handle("PUT /devices/{id}", auth(c.Devices.Update))
	mux.Handle("DELETE /devices/{id}", auth(c.Devices.SoftDelete))

	// incidents
	mux.Handle("GET /incidents", auth(c.Incidents.GetAll))
	mux.Handle("GET /incidents/{id}", auth(c.Incidents.GetByID))
	mux.Handle("POST /incidents", auth(c.Incidents.Create))
	mux.Handle("PUT /incidents/{id}", auth(c.Incidents.Update))
	mux.Handle("PATCH /incidents/{id}/close", auth(c.Incidents.SetAsClosed))
	mux.Handle("DELETE /incidents/{id}", auth(c.Incidents.SoftDelete))

	// users
	mux.Handle("GET /users", auth(c.Users.GetAll))
	mux.Handle("GET /users/{id}", auth(c.Users.GetByID))
	mux.Handle("POST /users", auth(c.Users.Create))
	mux.Handle("PUT /users/{id}", auth(c.Users.Update))
	mux.Handle("PATCH /users/{id}/admin", auth(c.Users.SetAsAdmin))
	mux.Handle("DELETE /users/{id}", auth(c.Users.SoftDelete))

	// logs
	mux.Handle("GET /logs", auth(c.Logs.GetAll))
	mux.Handle("GET /logs/{id}", auth(c.Logs.GetByID))
	mux.Handle("DELETE /logs/{id}", auth(c.Logs.SoftDelete))

	return mux
}
