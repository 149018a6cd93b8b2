package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	defaultJWTSecret  = "a-very-secret-key-should-be-longer-and-random"
	defaultSessionTTL = 8 * time.Hour
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	StoreDriver    string
	DatabaseURL    string
	RunMigrations  bool
	MigrationsPath string

	JWTSecret         string
	JWTIssuer         string
	SessionTTL        time.Duration
	SessionCookieName string
	LoginRateLimit    string

	RedisAddr string
	RedisDB   int

	ExportDir       string
	ExportGCSBucket string

	GoogleClientID     string
	CORSAllowedOrigins []string

	AdminEmail    string
	AdminPassword string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "tax-compliance-app")
	viper.SetDefault("SESSION_TTL", defaultSessionTTL.String())
	viper.SetDefault("SESSION_COOKIE_NAME", "session")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("EXPORT_DIR", "exports")
	viper.SetDefault("EXPORT_GCS_BUCKET", "")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("ADMIN_EMAIL", "admin@example.com")
	viper.SetDefault("ADMIN_PASSWORD", "")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		LogLevel:          parseLogLevel(viper.GetString("LOG_LEVEL")),
		StoreDriver:       strings.ToLower(viper.GetString("STORE_DRIVER")),
		DatabaseURL:       viper.GetString("PGSQL_URL"),
		RunMigrations:     viper.GetBool("RUN_MIGRATIONS"),
		MigrationsPath:    viper.GetString("MIGRATIONS_PATH"),
		JWTSecret:         viper.GetString("JWT_SECRET"),
		JWTIssuer:         viper.GetString("JWT_ISSUER"),
		SessionCookieName: viper.GetString("SESSION_COOKIE_NAME"),
		LoginRateLimit:    viper.GetString("LOGIN_RATE_LIMIT"),
		RedisAddr:         viper.GetString("REDIS_ADDR"),
		RedisDB:           viper.GetInt("REDIS_DB"),
		ExportDir:         viper.GetString("EXPORT_DIR"),
		ExportGCSBucket:   viper.GetString("EXPORT_GCS_BUCKET"),
		GoogleClientID:    viper.GetString("GOOGLE_CLIENT_ID"),
		AdminEmail:        viper.GetString("ADMIN_EMAIL"),
		AdminPassword:     viper.GetString("ADMIN_PASSWORD"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	ttlStr := viper.GetString("SESSION_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = defaultSessionTTL
		log.Printf("Warning: Invalid value for SESSION_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.SessionTTL = ttl

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = "session"
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if o := strings.TrimSpace(origin); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORE_DRIVER is %q", StoreDriverPostgres)
		}
	case StoreDriverMemory:
		log.Println("Warning: STORE_DRIVER=memory, records are lost on restart.")
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in is disabled.")
	}

	return cfg, nil
}

func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
