package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/feed"
	"lumina/logger"
	"lumina/models"
)

var lagos = time.FixedZone("WAT", 60*60)

func newTestFeedService(t *testing.T, api *stubAPI) (*FeedService, *PreferencesStore) {
	t.Helper()
	store, _ := newTestStore(t)
	fs := NewFeedService(api, store, lagos, logger.Nop())
	fs.now = func() time.Time { return time.Date(2026, 10, 17, 19, 0, 0, 0, lagos) }
	return fs, store
}

func homeIDs(f feed.HomeFeed) []string {
	var ids []string
	for _, bucket := range [][]string{
		venueIDList(f.Hero), venueIDList(f.PickedForYou), venueIDList(f.DateNight), venueIDList(f.LateNight),
	} {
		ids = append(ids, bucket...)
	}
	return ids
}

func TestFeedService_LoadHomeFeed_UsesSelectedCity(t *testing.T) {
	// Arrange
	fs, _ := newTestFeedService(t, newStubAPI())

	// Act
	home := fs.LoadHomeFeed(context.Background(), "")

	// Assert
	assert.Equal(t, 20261017, home.Seed)
	ids := homeIDs(home)
	assert.NotEmpty(t, ids)
	assert.NotContains(t, ids, "201", "venues from other cities are not requested")
	assert.NotContains(t, ids, "106", "venues without a usable photo are skipped")

	seen := map[string]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "venue %s appears in two sections", id)
		seen[id] = true
	}
	for _, v := range home.Hero {
		assert.GreaterOrEqual(t, v.Rating, feed.HeroMinRating)
	}
	for _, e := range home.Events {
		assert.True(t, e.HasImage())
	}
}

func TestFeedService_LoadHomeFeed_IsStableWithinADay(t *testing.T) {
	fs, _ := newTestFeedService(t, newStubAPI())

	first := fs.LoadHomeFeed(context.Background(), "Lagos")
	second := fs.LoadHomeFeed(context.Background(), "Lagos")

	assert.Equal(t, first, second)
}

func TestFeedService_LoadHomeFeed_VenueFailureKeepsEvents(t *testing.T) {
	api := newStubAPI()
	api.venuesErr = errBoom
	fs, _ := newTestFeedService(t, api)

	home := fs.LoadHomeFeed(context.Background(), "Lagos")

	assert.Empty(t, home.Hero)
	assert.Empty(t, home.PickedForYou)
	assert.NotEmpty(t, home.Events)
}

func TestFeedService_LoadHomeFeed_EventFailureKeepsVenues(t *testing.T) {
	api := newStubAPI()
	api.eventsErr = errBoom
	fs, _ := newTestFeedService(t, api)

	home := fs.LoadHomeFeed(context.Background(), "Lagos")

	assert.NotEmpty(t, homeIDs(home))
	assert.Empty(t, home.Events)
}

func TestFeedService_LoadHomeFeed_BothSidesFail(t *testing.T) {
	api := newStubAPI()
	api.venuesErr = errBoom
	api.eventsErr = errBoom
	fs, _ := newTestFeedService(t, api)

	home := fs.LoadHomeFeed(context.Background(), "Lagos")

	assert.Empty(t, homeIDs(home))
	assert.Empty(t, home.Events)
}

func TestFeedService_RemoteWeights(t *testing.T) {
	// Arrange
	api := newStubAPI()
	api.sortResult = []string{"108", "105"}
	fs, store := newTestFeedService(t, api)
	fs.UseRemoteWeights(true)
	require.NoError(t, store.SetPersona(context.Background(), &models.Persona{PersonaID: "p1"}))

	// Act
	home := fs.LoadHomeFeed(context.Background(), "Lagos")

	// Assert
	assert.Equal(t, 1, api.sortCalls)
	require.NotEmpty(t, home.PickedForYou)
	// 108 and 105 are rated below the hero cut, so they lead the next bucket
	assert.Equal(t, []string{"108", "105"}, venueIDList(home.PickedForYou)[:2])
}

func TestFeedService_RemoteWeightsSkippedWithoutPersona(t *testing.T) {
	api := newStubAPI()
	fs, _ := newTestFeedService(t, api)
	fs.UseRemoteWeights(true)

	fs.LoadHomeFeed(context.Background(), "Lagos")

	assert.Equal(t, 0, api.sortCalls)
}

func TestFeedService_LoadExplore(t *testing.T) {
	fs, _ := newTestFeedService(t, newStubAPI())

	explore := fs.LoadExplore(context.Background(), "Lagos")

	require.NotEmpty(t, explore.Events)
	assert.Equal(t, feed.CategoryTonight, explore.Events[0].Category)
	assert.Equal(t, "501", explore.Events[0].Items[0].ItemID())
	for _, s := range explore.Venues {
		assert.NotEqual(t, feed.CategoryTonight, s.Category)
		assert.NotEqual(t, feed.CategoryWeekend, s.Category)
	}
}
