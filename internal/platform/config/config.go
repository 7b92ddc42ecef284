package config

import (
	"log"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without zoneinfo

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer = "greenhouse-ledger"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	// DataFile persists the in-memory store when no database is configured. Empty keeps it in memory only.
	DataFile string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Owner login. The password is stored as a bcrypt hash.
	AdminUsername     string
	AdminPasswordHash string

	FrontendBaseURL string
	RateLimit       string
	RedisURL        string

	AlertCronSchedule string
	Timezone          string
}

// UsesDatabase reports whether a Postgres connection string is configured.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("DATA_FILE", "greenhouse_ledger.json")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("ALERT_CRON_SCHEDULE", "0 6 * * *")
	v.SetDefault("TIMEZONE", "UTC")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:       v.GetString("PGSQL_URL"),
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:    v.GetString("MIGRATIONS_PATH"),
		DataFile:          v.GetString("DATA_FILE"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTIssuer:         v.GetString("JWT_ISSUER"),
		AdminUsername:     v.GetString("ADMIN_USERNAME"),
		AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		FrontendBaseURL:   v.GetString("FRONTEND_BASE_URL"),
		RateLimit:         v.GetString("RATE_LIMIT"),
		RedisURL:          v.GetString("REDIS_URL"),
		AlertCronSchedule: v.GetString("ALERT_CRON_SCHEDULE"),
		Timezone:          v.GetString("TIMEZONE"),
	}

	if cfg.DatabaseURL == "" {
		log.Printf("Warning: PGSQL_URL not set. Using the in-memory store (data file %q).\n", cfg.DataFile)
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
	}

	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Login is disabled until a bcrypt hash is configured.")
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		log.Printf("Warning: Unknown TIMEZONE ('%s'). Defaulting to UTC.\n", cfg.Timezone)
		cfg.Timezone = "UTC"
	}

	return cfg, nil
}
