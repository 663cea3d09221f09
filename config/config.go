package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, CORS policy and the upstream market-data provider.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	SERVER_REQUEST_TIMEOUT=10s
//	CORS_ALLOWED_ORIGINS=https://dashboard.example.com
//	PROVIDER_NAME=yahoo
//	PROVIDER_BASE_URL=https://query1.finance.yahoo.com
//	PROVIDER_TIMEOUT=10s
//	RATE_LIMIT_PER_MINUTE=60
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	CORS      CORSConfig      // Cross-origin policy
	Provider  ProviderConfig  // Market-data provider settings
	RateLimit RateLimitConfig // Per-client request limits
	Log       LogConfig       // Logger settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        // The TCP port the HTTP server will listen on (e.g., "8080")
	RequestTimeout time.Duration // Deadline attached to every request context
}

// CORSConfig lists the origins allowed to call the API. A single "*" allows any origin.
type CORSConfig struct {
	AllowedOrigins []string
}

// ProviderConfig defines which market-data provider backs the quote service
// and how the service talks to it.
//
// Fields:
//   - Name: provider implementation ("yahoo" or "financego").
//   - BaseURL: API root for REST providers.
//   - Timeout: per-call HTTP timeout.
//   - UserAgent: User-Agent header sent upstream.
//   - ParallelFetch: fetch snapshot and history concurrently.
type ProviderConfig struct {
	Name          string
	BaseURL       string
	Timeout       time.Duration
	UserAgent     string
	ParallelFetch bool
}

// RateLimitConfig caps requests per client IP per minute. Zero disables the limiter.
type RateLimitConfig struct {
	PerMinute int
}

// LogConfig controls the global zerolog logger.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Supported provider names.
const (
	ProviderYahoo     = "yahoo"
	ProviderFinanceGo = "financego"
)

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_REQUEST_TIMEOUT", "10s")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("PROVIDER_NAME", ProviderYahoo)
	viper.SetDefault("PROVIDER_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("PROVIDER_TIMEOUT", "10s")
	viper.SetDefault("PROVIDER_USER_AGENT", "Mozilla/5.0 (compatible; quotepulse/1.0)")
	viper.SetDefault("PROVIDER_PARALLEL_FETCH", true)

	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			RequestTimeout: viper.GetDuration("SERVER_REQUEST_TIMEOUT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Provider: ProviderConfig{
			Name:          strings.ToLower(strings.TrimSpace(viper.GetString("PROVIDER_NAME"))),
			BaseURL:       strings.TrimRight(viper.GetString("PROVIDER_BASE_URL"), "/"),
			Timeout:       viper.GetDuration("PROVIDER_TIMEOUT"),
			UserAgent:     viper.GetString("PROVIDER_USER_AGENT"),
			ParallelFetch: viper.GetBool("PROVIDER_PARALLEL_FETCH"),
		},
		RateLimit: RateLimitConfig{
			PerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Pretty: viper.GetBool("LOG_PRETTY"),
		},
	}

	validateConfig()
}

// splitList turns "a, b,,c" into ["a" "b" "c"].
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing or invalid.
func validateConfig() {
	if problems := AppConfig.problems(); len(problems) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", problems)
	}
}

// problems lists the environment variables whose values cannot be used.
func (c Config) problems() []string {
	var missing []string

	if c.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if c.Server.RequestTimeout <= 0 {
		missing = append(missing, "SERVER_REQUEST_TIMEOUT")
	}
	if len(c.CORS.AllowedOrigins) == 0 || !validOrigins(c.CORS.AllowedOrigins) {
		missing = append(missing, "CORS_ALLOWED_ORIGINS")
	}
	switch c.Provider.Name {
	case ProviderYahoo:
		if c.Provider.BaseURL == "" {
			missing = append(missing, "PROVIDER_BASE_URL")
		}
	case ProviderFinanceGo:
	default:
		missing = append(missing, "PROVIDER_NAME")
	}
	if c.Provider.Timeout <= 0 {
		missing = append(missing, "PROVIDER_TIMEOUT")
	}
	if c.RateLimit.PerMinute < 0 {
		missing = append(missing, "RATE_LIMIT_PER_MINUTE")
	}

	return missing
}

// validOrigins accepts "*" or absolute http(s) origins.
func validOrigins(origins []string) bool {
	for _, o := range origins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return false
		}
	}
	return true
}
