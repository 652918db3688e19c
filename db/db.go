package db

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ob-forms-backend/config"
)

var DB *gorm.DB

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

func Connect(cfg config.Configuration) (err error) {
	if DB != nil {
		return nil
	}
	dialector, err := openDialector(cfg)
	if err != nil {
		return err
	}

	debugMode := cfg.Database.DebugMode != nil && *cfg.Database.DebugMode

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 15 * time.Second
	bo.MaxElapsedTime = 2 * time.Minute

	var db *gorm.DB
	err = backoff.RetryNotify(func() error {
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger: gorm_logrus.New(),
		})
		return err
	}, bo, func(err error, next time.Duration) {
		log.WithError(err).Warnf("database connection failed, retry in %s", next)
	})
	if err != nil {
		return errors.Wrap(err, "database connection failed")
	}

	if debugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
		DB = db.Debug()
	} else {
		DB = db
	}
	if cfg.Database.MigrateOnStart == nil || *cfg.Database.MigrateOnStart {
		if err = AutoMigrateDB(); err != nil {
			return err
		}
	}
	log.Info("connected to the database")
	return nil
}

func openDialector(cfg config.Configuration) (gorm.Dialector, error) {
	switch cfg.Database.Driver {
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Name, cfg.Database.Password)
		return postgres.Open(dsn), nil
	case DriverSqlite:
		return sqlite.Open(cfg.Database.SqlitePath), nil
	}
	return nil, errors.Errorf("unknown database driver: %s", cfg.Database.Driver)
}

func PingDB() error {
	db, err := DB.DB()
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		return err
	}
	return nil
}
