package confs

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting of the API server.
type Config struct {
	Port    int
	GinMode string

	DatabaseURL  string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	SQLitePath   string
	MaxIdleConns int
	MaxOpenConns int

	LogLevel  string
	LogFormat string

	CORSOrigins []string
}

// Driver names the gorm dialect selected by the configuration.
func (c *Config) Driver() string {
	if c.DatabaseURL != "" || c.hasPostgresParams() {
		return "postgres"
	}
	return "sqlite"
}

func (c *Config) hasPostgresParams() bool {
	return c.DBHost != "" && c.DBPort != "" && c.DBUser != "" && c.DBPassword != "" && c.DBName != ""
}

// PostgresDSN returns the connection string for the postgres driver.
func (c *Config) PostgresDSN() (string, error) {
	if c.DatabaseURL != "" {
		// libpq-style URLs from hosting providers use the short scheme
		dsn := c.DatabaseURL
		if strings.HasPrefix(dsn, "postgres://") {
			dsn = "postgresql://" + strings.TrimPrefix(dsn, "postgres://")
		}
		return dsn, nil
	}
	if !c.hasPostgresParams() {
		return "", fmt.Errorf("missing required database configuration: DATABASE_URL or (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	sslMode := "require"
	if c.DBHost == "localhost" || c.DBHost == "127.0.0.1" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, sslMode), nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

// LoadConfig loads environment variables from a .env file if present
// and resolves them against defaults.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not load .env: %w", err)
	}
	return FromViper(NewViper())
}

// NewViper returns a viper instance bound to the process environment with
// every default applied.
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 3000)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "")
	v.SetDefault("DB_PORT", "")
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "")
	v.SetDefault("SQLITE_PATH", "/tmp/test.db")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ORIGINS", "*")
	return v
}

// FromViper builds a Config out of an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:         v.GetInt("PORT"),
		GinMode:      v.GetString("GIN_MODE"),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		DBHost:       v.GetString("DB_HOST"),
		DBPort:       v.GetString("DB_PORT"),
		DBUser:       v.GetString("DB_USER"),
		DBPassword:   v.GetString("DB_PASSWORD"),
		DBName:       v.GetString("DB_NAME"),
		SQLitePath:   v.GetString("SQLITE_PATH"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogFormat:    v.GetString("LOG_FORMAT"),
		CORSOrigins:  splitList(v.GetString("CORS_ORIGINS")),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q: want debug, release or test", cfg.GinMode)
	}
	switch cfg.LogFormat {
	case "json", "console":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want json or console", cfg.LogFormat)
	}
	return cfg, nil
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
