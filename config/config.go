package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type JWT struct {
	Secret string
	Issuer string
	ExpMin int
}

type Redis struct {
	Addr        string
	PresenceTTL int // seconds
}

type Admin struct {
	Email    string
	Password string
}

type Config struct {
	HTTP  HTTP
	DB    DB
	JWT   JWT
	Redis Redis
	Admin Admin
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.http.host", "127.0.0.1")
	v.SetDefault("server.http.port", 8080)
	v.SetDefault("server.db.host", "127.0.0.1")
	v.SetDefault("server.db.port", 3306)
	v.SetDefault("server.db.user", "root")
	v.SetDefault("server.db.pass", "")
	v.SetDefault("server.db.name", "park_manager")
	v.SetDefault("server.redis.addr", "")
	v.SetDefault("server.redis.presence_ttl", 120)
	v.SetDefault("server.admin.email", "admin@parkmanager.local")
	v.SetDefault("server.admin.password", "admin123")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("server.http.host"), Port: v.GetInt("server.http.port")},
		DB: DB{
			Host: v.GetString("server.db.host"),
			Port: v.GetInt("server.db.port"),
			User: v.GetString("server.db.user"),
			Pass: v.GetString("server.db.pass"),
			Name: v.GetString("server.db.name"),
		},
		Redis: Redis{
			Addr:        v.GetString("server.redis.addr"),
			PresenceTTL: v.GetInt("server.redis.presence_ttl"),
		},
		Admin: Admin{
			Email:    v.GetString("server.admin.email"),
			Password: v.GetString("server.admin.password"),
		},
	}
	cfg.JWT.Secret = v.GetString("server.jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("server.jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "park-manager-api"
	}
	cfg.JWT.ExpMin = v.GetInt("server.jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	return cfg, nil
}
