package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"lumina/api/lumina"
	"lumina/config"
	"lumina/dao/redis"
	"lumina/db"
	"lumina/logger"
	"lumina/models"
	"lumina/models/event"
	searchmodels "lumina/models/search"
	"lumina/models/venue"
)

var (
	fixturesDir = filepath.Join("..", config.RESOURCES_PATH_PREFIX)
	errBoom     = errors.New("boom")
)

func newTestStore(t *testing.T) (*PreferencesStore, *redis.RedisPreferencesDAO) {
	t.Helper()
	dao := redis.NewRedisPreferencesDAO(db.NewMockRedisClient(), logger.Nop())
	store := NewPreferencesStore(dao, config.DEFAULT_CITY, logger.Nop())
	require.NoError(t, store.Init(context.Background()))
	return store, dao
}

func signedToken(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": sub}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func signIn(t *testing.T, store *PreferencesStore, sub string) {
	t.Helper()
	require.NoError(t, store.SetAuthToken(context.Background(), signedToken(t, sub, time.Now().Add(time.Hour))))
}

// stubAPI serves everything from the fixture mock unless an override is set.
type stubAPI struct {
	*lumina.LuminaApiClientMock

	venuesErr  error
	eventsErr  error
	search     func(query string) (*searchmodels.SearchResponse, error)
	sortCalls  int
	sortResult []string
	sortErr    error
	chat       func(room string) ([]models.ChatMessage, error)
	bookings   []models.BookingRequest
}

func newStubAPI() *stubAPI {
	return &stubAPI{LuminaApiClientMock: lumina.NewLuminaApiClientMock(fixturesDir)}
}

func (s *stubAPI) GetVenues(ctx context.Context, params models.ListParams) ([]venue.Venue, error) {
	if s.venuesErr != nil {
		return nil, s.venuesErr
	}
	return s.LuminaApiClientMock.GetVenues(ctx, params)
}

func (s *stubAPI) GetEvents(ctx context.Context, params models.ListParams) ([]event.Event, error) {
	if s.eventsErr != nil {
		return nil, s.eventsErr
	}
	return s.LuminaApiClientMock.GetEvents(ctx, params)
}

func (s *stubAPI) Search(ctx context.Context, query string, limit int) (*searchmodels.SearchResponse, error) {
	if s.search != nil {
		return s.search(query)
	}
	return s.LuminaApiClientMock.Search(ctx, query, limit)
}

func (s *stubAPI) SortForPersona(ctx context.Context, personaID string, ids []string) ([]string, error) {
	s.sortCalls++
	if s.sortErr != nil {
		return nil, s.sortErr
	}
	if s.sortResult != nil {
		return s.sortResult, nil
	}
	return s.LuminaApiClientMock.SortForPersona(ctx, personaID, ids)
}

func (s *stubAPI) GetChatMessages(ctx context.Context, room string) ([]models.ChatMessage, error) {
	if s.chat != nil {
		return s.chat(room)
	}
	return s.LuminaApiClientMock.GetChatMessages(ctx, room)
}

func (s *stubAPI) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	s.bookings = append(s.bookings, req)
	return s.LuminaApiClientMock.CreateBooking(ctx, req)
}
