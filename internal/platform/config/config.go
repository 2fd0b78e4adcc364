package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Export modes.
const (
	ExportModeRemote = "remote" // The bookkeeping backend renders export files
	ExportModeLocal  = "local"  // Files are rendered in-process
)

const (
	defaultJWTSecret      = "a-very-secret-key-should-be-longer-and-random"
	defaultFunctionPrefix = "make-server-53c2e113"
)

// Config holds application configuration.
type Config struct {
	Port            string
	IsProduction    bool
	DatabaseURL     string // Empty keeps editor drafts in memory
	RunMigrations   bool
	MigrationsPath  string
	JWTSecret       string
	FrontendBaseURL string
	RateLimit       string // ulule formatted rate, e.g. "300-M"

	Backend BackendConfig

	ApproveSettleTimeout   time.Duration
	ApproveSettleBaseDelay time.Duration
	COACacheTTL            time.Duration
	BoardRefreshAge        time.Duration
	ExportMode             string
	TrackExportTimeout     time.Duration

	PosthogAPIKey string
}

// BackendConfig locates the bookkeeping backend.
type BackendConfig struct {
	ProjectID      string
	BaseURL        string // Overrides the URL derived from ProjectID
	FunctionPrefix string
	AnonKey        string
	Timeout        time.Duration
	MaxResponse    int64 // Largest response body accepted, in bytes
}

// FunctionsURL returns the root every backend path is appended to.
func (b BackendConfig) FunctionsURL() string {
	base := strings.TrimRight(b.BaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.supabase.co/functions/v1", b.ProjectID)
	}
	return base + "/" + strings.Trim(b.FunctionPrefix, "/")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("RUN_MIGRATIONS", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("BACKEND_PROJECT_ID", "")
	viper.SetDefault("BACKEND_BASE_URL", "")
	viper.SetDefault("BACKEND_FUNCTION_PREFIX", defaultFunctionPrefix)
	viper.SetDefault("BACKEND_ANON_KEY", "")
	viper.SetDefault("BACKEND_TIMEOUT", "30s")
	viper.SetDefault("BACKEND_MAX_RESPONSE_BYTES", 32<<20)
	viper.SetDefault("APPROVE_SETTLE_TIMEOUT", "2s")
	viper.SetDefault("APPROVE_SETTLE_BASE_DELAY", "50ms")
	viper.SetDefault("COA_CACHE_TTL", "5m")
	viper.SetDefault("BOARD_REFRESH_AGE", "30s")
	viper.SetDefault("EXPORT_MODE", ExportModeRemote)
	viper.SetDefault("TRACK_EXPORT_TIMEOUT", "10s")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		RunMigrations:   viper.GetBool("RUN_MIGRATIONS"),
		MigrationsPath:  viper.GetString("MIGRATIONS_PATH"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		FrontendBaseURL: viper.GetString("FRONTEND_BASE_URL"),
		RateLimit:       viper.GetString("RATE_LIMIT"),
		Backend: BackendConfig{
			ProjectID:      viper.GetString("BACKEND_PROJECT_ID"),
			BaseURL:        viper.GetString("BACKEND_BASE_URL"),
			FunctionPrefix: viper.GetString("BACKEND_FUNCTION_PREFIX"),
			AnonKey:        viper.GetString("BACKEND_ANON_KEY"),
			Timeout:        durationOrDefault("BACKEND_TIMEOUT", 30*time.Second),
			MaxResponse:    viper.GetInt64("BACKEND_MAX_RESPONSE_BYTES"),
		},
		ApproveSettleTimeout:   durationOrDefault("APPROVE_SETTLE_TIMEOUT", 2*time.Second),
		ApproveSettleBaseDelay: durationOrDefault("APPROVE_SETTLE_BASE_DELAY", 50*time.Millisecond),
		COACacheTTL:            durationOrDefault("COA_CACHE_TTL", 5*time.Minute),
		BoardRefreshAge:        durationOrDefault("BOARD_REFRESH_AGE", 30*time.Second),
		ExportMode:             strings.ToLower(viper.GetString("EXPORT_MODE")),
		TrackExportTimeout:     durationOrDefault("TRACK_EXPORT_TIMEOUT", 10*time.Second),
		PosthogAPIKey:          viper.GetString("POSTHOG_API_KEY"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Editor drafts are kept in memory.")
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.ExportMode != ExportModeRemote && cfg.ExportMode != ExportModeLocal {
		log.Printf("Warning: Invalid value for EXPORT_MODE ('%s'). Defaulting to %s.\n", cfg.ExportMode, ExportModeRemote)
		cfg.ExportMode = ExportModeRemote
	}

	if cfg.Backend.BaseURL == "" && cfg.Backend.ProjectID == "" {
		return nil, fmt.Errorf("either BACKEND_BASE_URL or BACKEND_PROJECT_ID must be set")
	}
	if cfg.Backend.AnonKey == "" {
		log.Println("Warning: BACKEND_ANON_KEY not set. Backend calls will be unauthenticated.")
	}
	if cfg.IsProduction && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return cfg, nil
}

// durationOrDefault reads a duration key, falling back to def when it is invalid.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
