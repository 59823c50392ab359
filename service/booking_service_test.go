package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/dao/redis"
	"lumina/logger"
	"lumina/models"
)

func validBooking() models.BookingRequest {
	return models.BookingRequest{EventID: "501", PackageID: "1", Guests: 4, Date: "2026-10-17"}
}

func TestBookingService_Book_Success(t *testing.T) {
	// Arrange
	store, _ := newTestStore(t)
	signIn(t, store, "user-1")
	api := newStubAPI()
	bs := NewBookingService(api, store, logger.Nop())
	ctx := context.Background()

	// Act
	res, err := bs.Book(ctx, validBooking())

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, res.BookingID)
	assert.False(t, res.RequiresVerification)
	require.Len(t, api.bookings, 1)
	assert.Equal(t, "user-1", api.bookings[0].UserID)
	assert.NotEmpty(t, api.bookings[0].IdempotencyKey)
	assert.Equal(t, 1, store.Count(ctx, redis.PrefTripCount))
}

func TestBookingService_Book_KeepsCallerIdempotencyKey(t *testing.T) {
	store, _ := newTestStore(t)
	signIn(t, store, "user-1")
	api := newStubAPI()
	bs := NewBookingService(api, store, logger.Nop())
	req := validBooking()
	req.IdempotencyKey = "retry-me"

	_, err := bs.Book(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "retry-me", api.bookings[0].IdempotencyKey)
}

func TestBookingService_Book_Validation(t *testing.T) {
	store, _ := newTestStore(t)
	signIn(t, store, "user-1")
	api := newStubAPI()
	bs := NewBookingService(api, store, logger.Nop())

	for name, mutate := range map[string]func(*models.BookingRequest){
		"no guests":  func(r *models.BookingRequest) { r.Guests = 0 },
		"no package": func(r *models.BookingRequest) { r.PackageID = "" },
		"no date":    func(r *models.BookingRequest) { r.Date = "" },
	} {
		t.Run(name, func(t *testing.T) {
			req := validBooking()
			mutate(&req)

			_, err := bs.Book(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Empty(t, api.bookings)
}

func TestBookingService_Book_VerificationRedirect(t *testing.T) {
	store, _ := newTestStore(t)
	signIn(t, store, "user-1")
	api := newStubAPI()
	api.RequireVerification = true
	bs := NewBookingService(api, store, logger.Nop())
	ctx := context.Background()

	res, err := bs.Book(ctx, validBooking())

	require.NoError(t, err)
	assert.True(t, res.RequiresVerification)
	assert.Equal(t, VerificationPath+"?event_id=501&package_id=1", res.RedirectTo)
	assert.Equal(t, 0, store.Count(ctx, redis.PrefTripCount))
}

func TestBookingService_Book_NotSignedIn(t *testing.T) {
	store, _ := newTestStore(t)
	bs := NewBookingService(newStubAPI(), store, logger.Nop())

	_, err := bs.Book(context.Background(), validBooking())

	assert.ErrorIs(t, err, ErrNotSignedIn)
}
