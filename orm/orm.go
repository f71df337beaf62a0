package orm

import (
	"fmt"
	"time"

	"imagehost/config"
	"imagehost/logutils"
	"imagehost/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to the configured database and returns the handle.
// Callers keep and pass the handle explicitly; there is no package-level
// connection state.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.Database.SQLitePath), &gorm.Config{})
	case "postgres":
		pg := cfg.Database.Postgres
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			pg.Host, pg.User, pg.Password, pg.DBName, pg.Port, pg.SSLMode, pg.TimeZone)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logutils.Log.Infof("%s database init success", cfg.Database.Driver)
	return db, nil
}

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&model.Project{}, "Tags", &model.ProjectTag{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&model.Tag{}, "Projects", &model.ProjectTag{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&model.Uploader{},
		&model.Project{},
		&model.Image{},
		&model.Tag{},
	)
}
