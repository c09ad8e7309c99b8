package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"farmacia/internal/config"
)

// EnsureSchema creates the inventory tables when they do not exist. Every
// statement is idempotent; there is no schema versioning.
func EnsureSchema(ctx context.Context, db *gorm.DB, cfg config.DBConfig) error {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN())
		if err != nil {
			return fmt.Errorf("failed to connect for schema bootstrap: %w", err)
		}
		defer pool.Close()
		return applyPostgres(ctx, pool)
	case config.DriverSQLite:
		return applySQLite(ctx, db)
	default:
		return fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

func applyPostgres(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range postgresSchema {
		log.Printf("Applying schema statement %d/%d", i+1, len(postgresSchema))
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d failed: %w", i+1, err)
		}
	}
	log.Println("Schema is up to date")
	return nil
}

func applySQLite(ctx context.Context, db *gorm.DB) error {
	for i, stmt := range sqliteSchema {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("schema statement %d failed: %w", i+1, err)
		}
	}
	return nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS especialidad (
  cod_espec SERIAL PRIMARY KEY,
  descripcion_esp TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS tipo_medic (
  cod_tipo_med SERIAL PRIMARY KEY,
  descripcion TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS medicamento (
  cod_medicamento SERIAL PRIMARY KEY,
  descripcion_med TEXT NOT NULL,
  stock INTEGER NOT NULL DEFAULT 0,
  precio_venta_uni NUMERIC(10,2) NOT NULL DEFAULT 0,
  cod_tipo_med INTEGER REFERENCES tipo_medic(cod_tipo_med),
  cod_espec INTEGER REFERENCES especialidad(cod_espec)
)`,
	`CREATE INDEX IF NOT EXISTS idx_medicamento_cod_tipo_med ON medicamento(cod_tipo_med)`,
	`CREATE INDEX IF NOT EXISTS idx_medicamento_cod_espec ON medicamento(cod_espec)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS especialidad (
  cod_espec INTEGER PRIMARY KEY AUTOINCREMENT,
  descripcion_esp TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS tipo_medic (
  cod_tipo_med INTEGER PRIMARY KEY AUTOINCREMENT,
  descripcion TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS medicamento (
  cod_medicamento INTEGER PRIMARY KEY AUTOINCREMENT,
  descripcion_med TEXT NOT NULL,
  stock INTEGER NOT NULL DEFAULT 0,
  precio_venta_uni NUMERIC NOT NULL DEFAULT 0,
  cod_tipo_med INTEGER REFERENCES tipo_medic(cod_tipo_med),
  cod_espec INTEGER REFERENCES especialidad(cod_espec)
)`,
	`CREATE INDEX IF NOT EXISTS idx_medicamento_cod_tipo_med ON medicamento(cod_tipo_med)`,
	`CREATE INDEX IF NOT EXISTS idx_medicamento_cod_espec ON medicamento(cod_espec)`,
}
