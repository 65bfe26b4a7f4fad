package database

import (
	"fmt"

	"retrofolio/internal/config"
	"retrofolio/internal/domain"

	"github.com/charmbracelet/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	DB *gorm.DB
)

type Options struct {
	ExistingDB  *gorm.DB
	Dialector   gorm.Dialector
	Logger      logger.Interface
	AutoMigrate bool
	Migrations  []any
}

type Option func(*Options)

// SetupDB opens the connection and runs migrations. Defaults target the
// configured Postgres instance; tests swap in a sqlite dialector or an
// existing connection through the options.
func SetupDB(cfg config.DatabaseConfig, opts ...Option) (*gorm.DB, error) {
	options := defaultOptions(cfg)
	for _, opt := range opts {
		opt(&options)
	}

	switch {
	case options.ExistingDB != nil:
		DB = options.ExistingDB
	case options.Dialector != nil:
		gormCfg := &gorm.Config{}
		if options.Logger != nil {
			gormCfg.Logger = options.Logger
		}
		db, err := gorm.Open(options.Dialector, gormCfg)
		if err != nil {
			return nil, fmt.Errorf("database: open connection: %w", err)
		}
		DB = db
		configureConnectionPool(db, cfg)
	default:
		return nil, fmt.Errorf("database: no dialector or existing connection provided")
	}

	if options.AutoMigrate && len(options.Migrations) > 0 {
		if err := DB.AutoMigrate(options.Migrations...); err != nil {
			return nil, fmt.Errorf("database: auto migrate: %w", err)
		}
		log.Info("Database migration completed.")
	}

	return DB, nil
}

func defaultOptions(cfg config.DatabaseConfig) Options {
	return Options{
		Dialector:   postgres.Open(buildDSN(cfg)),
		Logger:      silentLogger(),
		AutoMigrate: true,
		Migrations:  defaultMigrations(),
	}
}

func buildDSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
	)
}

func silentLogger() logger.Interface {
	return logger.New(
		log.Default(),
		logger.Config{LogLevel: logger.Silent},
	)
}

func defaultMigrations() []any {
	return []any{
		domain.GuestbookEntry{},
		domain.BlacklistedIP{},
	}
}

func WithExistingDB(db *gorm.DB) Option {
	return func(o *Options) {
		o.ExistingDB = db
	}
}

func WithDialector(d gorm.Dialector) Option {
	return func(o *Options) {
		o.Dialector = d
	}
}

func WithLogger(l logger.Interface) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func WithAutoMigrate(enabled bool) Option {
	return func(o *Options) {
		o.AutoMigrate = enabled
	}
}

func WithMigrations(models ...any) Option {
	return func(o *Options) {
		if len(models) == 0 {
			o.Migrations = nil
			return
		}
		o.Migrations = append([]any(nil), models...)
	}
}

func configureConnectionPool(db *gorm.DB, cfg config.DatabaseConfig) {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Error("database: get sql.DB", "error", err)
		return
	}

	maxOpen := cfg.MaxOpenConns
	maxIdle := cfg.MaxIdleConns
	if maxIdle > maxOpen {
		maxIdle = maxOpen
	}

	if maxOpen > 0 {
		sqlDB.SetMaxOpenConns(maxOpen)
	}
	if maxIdle >= 0 {
		sqlDB.SetMaxIdleConns(maxIdle)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}
}
