package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lumina/api/lumina"
	"lumina/dao/redis"
	"lumina/models"
)

// VerificationPath is where the shell sends users the backend asks to verify.
const VerificationPath = "/verify-identity"

// BookingResult is what the booking screen acts on.
type BookingResult struct {
	BookingID            models.ID `json:"booking_id,omitempty"`
	Status               string    `json:"status,omitempty"`
	RequiresVerification bool      `json:"requires_verification"`
	RedirectTo           string    `json:"redirect_to,omitempty"`
	Message              string    `json:"message,omitempty"`
}

// BookingService validates and submits table/bottle booking requests.
type BookingService struct {
	luminaAPI lumina.LuminaAPI
	prefs     *PreferencesStore
	validate  *validator.Validate
	log       *zap.SugaredLogger
}

func NewBookingService(luminaAPI lumina.LuminaAPI, prefs *PreferencesStore, log *zap.SugaredLogger) *BookingService {
	return &BookingService{
		luminaAPI: luminaAPI,
		prefs:     prefs,
		validate:  validator.New(),
		log:       log,
	}
}

// Book submits req for the signed-in user. The idempotency key is generated
// when the caller did not set one, so a retried submit is not double-booked.
// A verification gate is reported in the result, not as an error.
func (bs *BookingService) Book(ctx context.Context, req models.BookingRequest) (*BookingResult, error) {
	if req.UserID == "" {
		req.UserID = bs.prefs.UserID()
	}
	if req.UserID == "" {
		return nil, ErrNotSignedIn
	}
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uuid.NewString()
	}
	if err := bs.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("[BookingService] invalid booking request: %w", errors.Join(ErrInvalidInput, err))
	}

	resp, err := bs.luminaAPI.CreateBooking(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("[BookingService] create booking for event %s: %w", req.EventID, err)
	}

	if resp.RequiresVerification {
		redirect := resp.VerificationURL
		if redirect == "" {
			redirect = VerificationPath + "?" + url.Values{
				"event_id":   {string(req.EventID)},
				"package_id": {string(req.PackageID)},
			}.Encode()
		}
		bs.log.Infof("[BookingService] Booking for event %s needs identity verification", req.EventID)
		return &BookingResult{RequiresVerification: true, RedirectTo: redirect, Message: resp.Message}, nil
	}

	if _, err := bs.prefs.AdjustCount(ctx, redis.PrefTripCount, 1); err != nil {
		bs.log.Warnf("[BookingService] Could not update trip count: %v", err)
	}
	bs.log.Infof("[BookingService] Booking %s created for event %s", resp.BookingID, req.EventID)
	return &BookingResult{BookingID: resp.BookingID, Status: resp.Status, Message: resp.Message}, nil
}
