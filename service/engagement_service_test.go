package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/logger"
	"lumina/models"
)

func TestEngagementService_RequiresSignIn(t *testing.T) {
	store, _ := newTestStore(t)
	es := NewEngagementService(newStubAPI(), store, logger.Nop())

	_, err := es.ToggleFavorite(context.Background(), models.ItemVenue, "101")

	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestEngagementService_ToggleFavorite(t *testing.T) {
	// Arrange
	store, _ := newTestStore(t)
	signIn(t, store, "user-1")
	api := newStubAPI()
	es := NewEngagementService(api, store, logger.Nop())
	ctx := context.Background()

	// Act
	on, err := es.ToggleFavorite(ctx, models.ItemVenue, "101")
	require.NoError(t, err)
	countAfterAdd := es.FavoriteCount(ctx)
	off, err := es.ToggleFavorite(ctx, models.ItemVenue, "101")
	require.NoError(t, err)

	// Assert
	assert.True(t, on)
	assert.Equal(t, 1, countAfterAdd)
	assert.False(t, off)
	assert.Equal(t, 0, es.FavoriteCount(ctx))
	favs, err := api.GetFavorites(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestEngagementService_ToggleFollow(t *testing.T) {
	store, _ := newTestStore(t)
	signIn(t, store, "user-1")
	es := NewEngagementService(newStubAPI(), store, logger.Nop())
	ctx := context.Background()

	on, err := es.ToggleFollow(ctx, models.ItemPromoter, "9001")
	require.NoError(t, err)
	follows, err := es.Follows(ctx)
	require.NoError(t, err)
	off, err := es.ToggleFollow(ctx, models.ItemPromoter, "9001")
	require.NoError(t, err)

	assert.True(t, on)
	assert.Len(t, follows, 1)
	assert.False(t, off)
}
