package db

import (
	"fmt"

	"faculty-portal/app/models"
	"faculty-portal/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the shared gorm handle. TranslateError is on so a
// unique-constraint violation surfaces as gorm.ErrDuplicatedKey
// regardless of driver.
func Connect(cfg config.DB) (*gorm.DB, error) {
	gcfg := &gorm.Config{TranslateError: true}
	switch cfg.Driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.Path), gcfg)
	case "mysql", "":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Pass, cfg.Host, cfg.Port, cfg.Name)
		return gorm.Open(mysql.Open(dsn), gcfg)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
	}
}

// Migrate creates or updates every table the portal persists.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.FundedResearch{},
		&models.Book{},
		&models.Article{},
		&models.Conference{},
		&models.Workshop{},
		&models.Award{},
		&models.Patent{},
	)
}
