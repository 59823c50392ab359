package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment
const ENV_PROD = "prod"
const ENV_DEV = "dev"

// Redis Config
const REDIS_DB_ADDRESS = "localhost:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Lumina API config
const LUMINA_ENDPOINT_BASE = "https://api.lumina.app"
const LUMINA_API_REQUESTS_PER_SECOND = 10
const LUMINA_API_BURST = 5
const LUMINA_VENUES_LIMIT = 60
const LUMINA_EVENTS_LIMIT = 60
const LUMINA_SEARCH_LIMIT = 20

// Feed config
const DEFAULT_CITY = "Lagos"
const DEFAULT_TIMEZONE = "Africa/Lagos"

// Local server config
const HTTP_ADDR = ":8080"
const CORS_ALLOWED_ORIGINS = "http://localhost:5173,http://localhost:8081"

// Chat polling config
const CHAT_POLL_INTERVAL_SECONDS = 3

// Search config
const SEARCH_DEBOUNCE_MILLIS = 300
const SEARCH_MIN_QUERY_LENGTH = 2

// Logging
const LOG_LEVEL = "info"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUES_RESPONSE_RESOURCE = "venues_response.json"
const EVENTS_RESPONSE_RESOURCE = "events_response.json"
const SEARCH_RESPONSE_RESOURCE = "search_response.json"
const CHAT_MESSAGES_RESOURCE = "chat_messages_response.json"
const PROMOTER_RESOURCE = "promoter_response.json"

// Config holds the runtime settings. Every field defaults to the constant
// above and can be overridden from the environment or a .env file.
type Config struct {
	Env               string
	APIBaseURL        string
	APIRequestsPerSec float64
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	HTTPAddr          string
	CORSOrigins       []string
	LogLevel          string
	DefaultCity       string
	Timezone          string
	ChatPollInterval  time.Duration
	ChatRoom          string
	SearchDebounce    time.Duration
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:               getEnv("LUMINA_ENV", ENV_DEV),
		APIBaseURL:        getEnv("LUMINA_API_BASE_URL", LUMINA_ENDPOINT_BASE),
		APIRequestsPerSec: getEnvFloat("LUMINA_API_RPS", LUMINA_API_REQUESTS_PER_SECOND),
		RedisAddr:         getEnv("LUMINA_REDIS_ADDR", REDIS_DB_ADDRESS),
		RedisPassword:     getEnv("LUMINA_REDIS_PASSWORD", REDIS_DB_PASSWORD),
		RedisDB:           getEnvInt("LUMINA_REDIS_DB", REDIS_DB),
		HTTPAddr:          getEnv("LUMINA_HTTP_ADDR", HTTP_ADDR),
		CORSOrigins:       splitList(getEnv("LUMINA_CORS_ORIGINS", CORS_ALLOWED_ORIGINS)),
		LogLevel:          getEnv("LUMINA_LOG_LEVEL", LOG_LEVEL),
		DefaultCity:       getEnv("LUMINA_DEFAULT_CITY", DEFAULT_CITY),
		Timezone:          getEnv("LUMINA_TIMEZONE", DEFAULT_TIMEZONE),
		ChatPollInterval:  time.Duration(getEnvPositiveInt("LUMINA_CHAT_POLL_SECONDS", CHAT_POLL_INTERVAL_SECONDS)) * time.Second,
		ChatRoom:          getEnv("LUMINA_CHAT_ROOM", ""),
		SearchDebounce:    time.Duration(getEnvInt("LUMINA_SEARCH_DEBOUNCE_MS", SEARCH_DEBOUNCE_MILLIS)) * time.Millisecond,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvPositiveInt is getEnvInt for values that must be above zero.
func getEnvPositiveInt(key string, fallback int) int {
	if n := getEnvInt(key, fallback); n > 0 {
		return n
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// Location resolves Timezone, falling back to UTC when the zone database
// does not know it.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
