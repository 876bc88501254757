package database

import (
	"fmt"
	"time"

	"quiz-bank-backend/internal/config"
	"quiz-bank-backend/internal/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: newGormLogger(log)}

	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := openSQLite(cfg.SQLitePath, gormCfg)
		if err != nil {
			return nil, err
		}
		log.WithField("path", cfg.SQLitePath).Info("database connected")
		return db, nil
	default:
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
		db, err := gorm.Open(postgres.Open(dsn), gormCfg)
		if err != nil {
			return nil, errors.Wrap(err, "connect to postgres")
		}
		log.WithFields(logrus.Fields{"host": cfg.DBHost, "db": cfg.DBName}).Info("database connected")
		return db, nil
	}
}

// OpenSQLite opens (and migrates) a sqlite database. ":memory:" gives a
// private database bound to a single connection.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := openSQLite(path, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func openSQLite(path string, gormCfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormCfg)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	sqlDB.SetMaxOpenConns(1)
	// Pragmas are per connection; the pool holds exactly one.
	for _, pragma := range []string{"PRAGMA busy_timeout = 5000", "PRAGMA foreign_keys = ON"} {
		if err := db.Exec(pragma).Error; err != nil {
			_ = sqlDB.Close()
			return nil, errors.Wrapf(err, "configure sqlite: %s", pragma)
		}
	}
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Question{},
		&models.Quiz{},
		&models.QuizQuestion{},
	)
	return errors.Wrap(err, "auto-migrate")
}

func newGormLogger(log *logrus.Logger) logger.Interface {
	level := logger.Warn
	if log.IsLevelEnabled(logrus.DebugLevel) {
		level = logger.Info
	}
	return logger.New(log, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
