package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port        int
	DB          DBConfig
	RedisAddr   string
	CacheTTL    time.Duration
	CORSOrigins []string
	SeedOnStart bool
}

type DBConfig struct {
	Driver        string
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	AdminUser     string
	AdminPassword string
	SQLitePath    string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first by godotenv.
func Load() (Config, error) {
	port, err := strconv.Atoi(getenv("PORT", "8080"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid PORT: %w", err)
	}

	ttl, err := time.ParseDuration(getenv("CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	cfg := Config{
		Port: port,
		DB: DBConfig{
			Driver:        strings.ToLower(getenv("DB_DRIVER", DriverPostgres)),
			Host:          getenv("DB_HOST", "localhost"),
			Port:          getenv("DB_PORT", "5432"),
			User:          os.Getenv("DB_USERNAME"),
			Password:      os.Getenv("DB_PASSWORD"),
			Name:          getenv("DB_DATABASE", "farmacia"),
			AdminUser:     os.Getenv("DB_ADMIN_USER"),
			AdminPassword: os.Getenv("DB_ADMIN_PASSWORD"),
			SQLitePath:    getenv("SQLITE_PATH", "farmacia.db"),
		},
		RedisAddr:   strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		CacheTTL:    ttl,
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "*")),
		SeedOnStart: getenvBool("SEED_ON_START", false),
	}

	if err := cfg.DB.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (d DBConfig) Validate() error {
	switch d.Driver {
	case DriverSQLite:
		if d.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH environment variable is required")
		}
	case DriverPostgres:
		if d.User == "" {
			return fmt.Errorf("DB_USERNAME environment variable is required")
		}
		if d.Password == "" {
			return fmt.Errorf("DB_PASSWORD environment variable is required")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", d.Driver)
	}
	return nil
}

// PostgresDSN builds a postgres:// URL for the application database.
func (d DBConfig) PostgresDSN() string {
	return postgresURL(d.User, d.Password, d.Host, d.Port, d.Name)
}

// AdminDSN points at the maintenance database with the admin credentials.
func (d DBConfig) AdminDSN() string {
	return postgresURL(d.AdminUser, d.AdminPassword, d.Host, d.Port, "postgres")
}

func postgresURL(user, password, host, port, database string) string {
	userInfo := url.UserPassword(user, password)
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=disable",
		userInfo.String(),
		host,
		port,
		url.PathEscape(database),
	)
}

func getenv(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getenvBool(k string, fallback bool) bool {
	if v, ok := os.LookupEnv(k); ok {
		switch strings.TrimSpace(strings.ToLower(v)) {
		case "1", "true", "yes":
			return true
		case "0", "false", "no":
			return false
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
