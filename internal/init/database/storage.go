package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"league/config"
	"league/internal/models"

	"github.com/golang-migrate/migrate/v4"
	ps "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var sqlFiles embed.FS

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Storage struct {
	Db *gorm.DB
}

func NewStorage(cfg config.DbConfig, log *slog.Logger) (*Storage, error) {
	log = log.With(slog.String("op", "database.NewStorage"), slog.String("driver", cfg.Driver))

	switch cfg.Driver {
	case DriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.Host, cfg.Username, os.Getenv("DB_PASSWORD"), cfg.DbName, cfg.Port, cfg.SSLMode,
		)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn), TranslateError: true})
		if err != nil {
			return nil, err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}

		migrator, err := NewMigrator(sqlFiles, "migrations")
		if err != nil {
			return nil, err
		}
		if err := migrator.ApplyMigrations(sqlDB); err != nil {
			return nil, err
		}
		log.Info("migrations applied")

		return &Storage{Db: db}, nil

	case DriverSQLite, "":
		db, err := OpenSQLite(cfg.Path)
		if err != nil {
			return nil, err
		}
		log.Info("sqlite storage ready", slog.String("path", cfg.Path))
		return &Storage{Db: db}, nil

	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

// OpenSQLite открывает sqlite с включенными внешними ключами и накатывает схему через AutoMigrate.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("auto migrate failed: %w", err)
	}
	return db, nil
}

type Migrator struct {
	srcDriver source.Driver
}

func NewMigrator(sqlFiles embed.FS, dirName string) (*Migrator, error) {
	srcDriver, err := iofs.New(sqlFiles, dirName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize source driver: %w", err)
	}
	return &Migrator{srcDriver: srcDriver}, nil
}

func (m *Migrator) ApplyMigrations(db *sql.DB) error {
	driver, err := ps.WithInstance(db, &ps.Config{})
	if err != nil {
		return fmt.Errorf("unable to create postgres driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", m.srcDriver, "postgres", driver)
	if err != nil {
		return fmt.Errorf("unable to create migrator: %w", err)
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	return nil
}
