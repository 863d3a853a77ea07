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
	Driver string // "mysql" or "sqlite"
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string // sqlite file path
}

type JWT struct {
	Secret string
	Issuer string
	ExpMin int
}

type Upload struct {
	Dir      string
	MaxBytes int64
}

type Config struct {
	HTTP   HTTP
	DB     DB
	JWT    JWT
	Upload Upload
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.db.driver", "mysql")
	v.SetDefault("server.db.host", "127.0.0.1")
	v.SetDefault("server.db.port", 3306)
	v.SetDefault("server.db.user", "root")
	v.SetDefault("server.db.pass", "root")
	v.SetDefault("server.db.name", "cia")
	v.SetDefault("server.db.path", "faculty.db")
	v.SetDefault("server.upload.dir", "uploads")
	v.SetDefault("server.upload.max_bytes", 10<<20)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("server.db.driver"),
			Host:   v.GetString("server.db.host"),
			Port:   v.GetInt("server.db.port"),
			User:   v.GetString("server.db.user"),
			Pass:   v.GetString("server.db.pass"),
			Name:   v.GetString("server.db.name"),
			Path:   v.GetString("server.db.path"),
		},
		Upload: Upload{
			Dir:      v.GetString("server.upload.dir"),
			MaxBytes: v.GetInt64("server.upload.max_bytes"),
		},
	}
	cfg.JWT.Secret = v.GetString("server.jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("server.jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "faculty-portal"
	}
	cfg.JWT.ExpMin = v.GetInt("server.jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 24 * 60
	}
	return cfg, nil
}
