package di

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/api/lumina"
	"lumina/config"
	"lumina/db"
	"lumina/logger"
)

func TestNewContainer_DevUsesMocks(t *testing.T) {
	root, err := filepath.Abs("..")
	require.NoError(t, err)
	t.Setenv("PROJECT_ROOT", root)
	cfg := config.Config{Env: config.ENV_DEV, DefaultCity: "Lagos", Timezone: "UTC", HTTPAddr: ":0"}

	c, err := NewContainer(cfg, logger.Nop())
	require.NoError(t, err)
	defer c.Close()

	assert.IsType(t, &db.MockRedisClient{}, c.RedisClient)
	assert.IsType(t, &lumina.LuminaApiClientMock{}, c.LuminaAPI)

	require.NoError(t, c.PreferencesStore.Init(context.Background()))
	home := c.FeedService.LoadHomeFeed(context.Background(), "")
	assert.NotEmpty(t, home.Hero)
}
