package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LUMINA_ENV", "")
	t.Setenv("LUMINA_REDIS_DB", "not-a-number")

	cfg := Load()

	assert.Equal(t, ENV_DEV, cfg.Env)
	assert.Equal(t, LUMINA_ENDPOINT_BASE, cfg.APIBaseURL)
	assert.Equal(t, REDIS_DB, cfg.RedisDB)
	assert.Equal(t, float64(LUMINA_API_REQUESTS_PER_SECOND), cfg.APIRequestsPerSec)
	assert.Equal(t, DEFAULT_CITY, cfg.DefaultCity)
	assert.Equal(t, 3*time.Second, cfg.ChatPollInterval)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LUMINA_ENV", ENV_PROD)
	t.Setenv("LUMINA_API_BASE_URL", "http://localhost:9999")
	t.Setenv("LUMINA_REDIS_DB", "3")
	t.Setenv("LUMINA_API_RPS", "2.5")
	t.Setenv("LUMINA_HTTP_ADDR", ":9090")
	t.Setenv("LUMINA_CORS_ORIGINS", " https://app.lumina.app , ")

	cfg := Load()

	assert.Equal(t, ENV_PROD, cfg.Env)
	assert.Equal(t, "http://localhost:9999", cfg.APIBaseURL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 2.5, cfg.APIRequestsPerSec)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, []string{"https://app.lumina.app"}, cfg.CORSOrigins)
}

func TestLoad_NonPositiveChatPollFallsBack(t *testing.T) {
	for _, raw := range []string{"0", "-4"} {
		t.Setenv("LUMINA_CHAT_POLL_SECONDS", raw)

		cfg := Load()

		assert.Equal(t, CHAT_POLL_INTERVAL_SECONDS*time.Second, cfg.ChatPollInterval, raw)
	}
}

func TestGetResourcePath_UsesProjectRoot(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/tmp/lumina")

	assert.Equal(t, "/tmp/lumina/resources/venues_response.json", GetResourcePath(VENUES_RESPONSE_RESOURCE))
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	cfg := Config{Timezone: "Not/AZone"}

	assert.Equal(t, time.UTC, cfg.Location())
}
