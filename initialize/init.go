package initialize

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/goncalvesethan/park-manager-api/app/controllers"
	"github.com/goncalvesethan/park-manager-api/app/db"
	jwtutil "github.com/goncalvesethan/park-manager-api/app/jwt"
	"github.com/goncalvesethan/park-manager-api/app/middleware"
	"github.com/goncalvesethan/park-manager-api/app/models"
	"github.com/goncalvesethan/park-manager-api/app/repo"
	"github.com/goncalvesethan/park-manager-api/app/services"
	"github.com/goncalvesethan/park-manager-api/config"
	"github.com/goncalvesethan/park-manager-api/global"
	"github.com/goncalvesethan/park-manager-api/router"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Actions  *services.ActionService
	Devices  *services.DeviceService
	Users    *services.UserService
	Presence *services.Presence
}

// Build wires the production service: config, MySQL, optional redis.
func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	}

	return NewApp(cfg, gdb, rdb)
}

// NewApp assembles repositories, services, controllers and routes on
// top of an already-open store. Tests feed it an in-memory database.
func NewApp(cfg *config.Config, gdb *gorm.DB, rdb *redis.Client) (*App, error) {
	global.Config = cfg
	global.Mdb = gdb
	global.Rdb = rdb

	if err := gdb.AutoMigrate(
		&models.Park{}, &models.Room{}, &models.Device{},
		&models.User{}, &models.Incident{}, &models.Action{}, &models.Log{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Repositories
	parkRepo := repo.NewParkRepository(gdb)
	roomRepo := repo.NewRoomRepository(gdb)
	deviceRepo := repo.NewDeviceRepository(gdb)
	userRepo := repo.NewUserRepository(gdb)
	incidentRepo := repo.NewIncidentRepository(gdb)
	actionRepo := repo.NewActionRepository(gdb)
	logRepo := repo.NewLogRepository(gdb)

	// Services
	audit := services.NewAuditLogger(logRepo, global.Logger)
	presence := services.NewPresence(rdb, time.Duration(cfg.Redis.PresenceTTL)*time.Second, global.Logger)
	parkSvc := services.NewParkService(parkRepo)
	roomSvc := services.NewRoomService(roomRepo)
	deviceSvc := services.NewDeviceService(deviceRepo)
	userSvc := services.NewUserService(userRepo)
	incidentSvc := services.NewIncidentService(incidentRepo)
	actionSvc := services.NewActionService(actionRepo, deviceSvc, audit)
	logSvc := services.NewLogService(logRepo)

	if err := userSvc.EnsureAdmin(cfg.Admin.Email, cfg.Admin.Password); err != nil {
		global.Logger.Warn().Err(err).Msg("admin seeding failed")
	}

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	mw := &middleware.Auth{Signer: signer}
	ctrls := router.Controllers{
		Health:    controllers.NewHealthController(),
		Auth:      controllers.NewAuthController(userSvc, signer),
		Parks:     controllers.NewParkController(parkSvc),
		Rooms:     controllers.NewRoomController(roomSvc),
		Devices:   controllers.NewDeviceController(deviceSvc, presence),
		Actions:   controllers.NewActionController(actionSvc, presence),
		Incidents: controllers.NewIncidentController(incidentSvc),
		Users:     controllers.NewUserController(userSvc),
		Logs:      controllers.NewLogController(logSvc),
	}

	h := middleware.Logging(router.New(ctrls, mw))

	return &App{
		Cfg:      cfg,
		DB:       gdb,
		Router:   h,
		Actions:  actionSvc,
		Devices:  deviceSvc,
		Users:    userSvc,
		Presence: presence,
	}, nil
}
