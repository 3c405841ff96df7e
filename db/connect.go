package db

import (
	"fmt"

	"starwars-api/confs"
	"starwars-api/entities"
	"starwars-api/logger"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Models lists every table owned by the API, in migration order.
var Models = []any{
	&entities.User{},
	&entities.People{},
	&entities.Planet{},
	&entities.FavPlanet{},
	&entities.FavPeople{},
}

// Connect opens the store selected by cfg and sizes its pool.
func Connect(cfg *confs.Config, log *zap.Logger) (Database, error) {
	var dialector gorm.Dialector

	switch cfg.Driver() {
	case "postgres":
		dsn, err := cfg.PostgresDSN()
		if err != nil {
			return nil, err
		}
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(cfg.SQLitePath)
	}
	log.Info("connecting to database", zap.String("driver", cfg.Driver()))

	database, err := Open(dialector, log)
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.GetDB().DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(0)

	log.Info("database connection established",
		zap.Int("max_idle_conns", cfg.MaxIdleConns),
		zap.Int("max_open_conns", cfg.MaxOpenConns))
	return database, nil
}

// Open wraps a dialector in a gorm handle configured the same way for every
// driver. Duplicate keys surface as gorm.ErrDuplicatedKey.
func Open(dialector gorm.Dialector, log *zap.Logger) (*GormDatabase, error) {
	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.ForGorm(log),
		PrepareStmt:    true,
		TranslateError: true,
		// favorites may reference users, planets and people that do not exist
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &GormDatabase{DB: gdb}, nil
}

// Migrate creates or updates the tables in Models.
func Migrate(database Database, log *zap.Logger) error {
	log.Info("running database migrations")
	if err := database.GetDB().AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("database migrations completed")
	return nil
}
