package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Generator GeneratorConfig
	Upload    UploadConfig
	Security  SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type GeneratorConfig struct {
	APIKey  string
	Models  []string
	Timeout time.Duration
}

type UploadConfig struct {
	MaxBytes          int64
	AllowedExtensions []string
}

// ExtensionAllowed reports whether a lowercase file extension, including the
// leading dot, is accepted for uploads.
func (u UploadConfig) ExtensionAllowed(ext string) bool {
	for _, allowed := range u.AllowedExtensions {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// defaultModels is the ordered probe list for the narrative generator.
// The first model that answers a ping at startup is used for the lifetime
// of the process.
var defaultModels = []string{
	"models/gemini-2.5-flash",
	"models/gemini-flash-latest",
	"models/gemini-2.0-flash",
	"models/gemini-2.5-pro",
	"models/gemini-pro-latest",
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Generator: GeneratorConfig{
			APIKey:  getEnv("GOOGLE_API_KEY", ""),
			Models:  getListEnv("GENAI_MODELS", defaultModels),
			Timeout: getDurationEnv("GENAI_TIMEOUT", 20*time.Second),
		},
		Upload: UploadConfig{
			MaxBytes:          getInt64Env("MAX_UPLOAD_BYTES", 16*1024*1024),
			AllowedExtensions: getListEnv("UPLOAD_ALLOWED_EXTENSIONS", []string{".csv", ".txt"}),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// GeneratorEnabled reports whether the narrative generator has enough
// configuration to be worth probing at startup.
func (c *Config) GeneratorEnabled() bool {
	return c.Generator.APIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
