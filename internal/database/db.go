package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"farmacia/internal/config"
)

// EnsureDatabaseExists connects to the maintenance database with the admin
// credentials and creates the application database when it is missing.
// It is a no-op when no admin user is configured.
func EnsureDatabaseExists(ctx context.Context, cfg config.DBConfig) error {
	if cfg.Driver != config.DriverPostgres || cfg.AdminUser == "" {
		return nil
	}

	log.Printf("Checking if database '%s' exists...", cfg.Name)

	poolCfg, err := pgxpool.ParseConfig(cfg.AdminDSN())
	if err != nil {
		return fmt.Errorf("failed to parse connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	if err := pool.QueryRow(ctx, query, cfg.Name).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		log.Printf("Database '%s' already exists", cfg.Name)
		return nil
	}

	log.Printf("Database '%s' does not exist. Creating it...", cfg.Name)

	// CREATE DATABASE cannot run inside a transaction block.
	createQuery := fmt.Sprintf("CREATE DATABASE %s", pgx.Identifier{cfg.Name}.Sanitize())
	if _, err := pool.Exec(ctx, createQuery); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	log.Printf("Database '%s' created successfully", cfg.Name)
	return nil
}

// Open returns a gorm handle for the configured driver and verifies the
// connection.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case config.DriverPostgres:
		log.Printf("Connecting to database: postgres://%s:***@%s:%s/%s", cfg.User, cfg.Host, cfg.Port, cfg.Name)
		db, err = gorm.Open(postgres.Open(cfg.PostgresDSN()), gormCfg)
	case config.DriverSQLite:
		log.Printf("Opening sqlite database: %s", cfg.SQLitePath)
		db, err = gorm.Open(sqlite.Open(sqliteDSN(cfg.SQLitePath)), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// A single connection keeps in-memory databases shared and
		// serializes writers.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(1 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Database close: %v", err)
		return
	}
	log.Println("Database connection closed")
}

func sqliteDSN(path string) string {
	return path + "?_foreign_keys=on&_busy_timeout=5000"
}
