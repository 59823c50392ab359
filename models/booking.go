package models

// BookingPackage is a bottle/table package offered for an event.
type BookingPackage struct {
	ID          ID      `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	BottleCount int     `json:"bottle_count"`
	MaxGuests   int     `json:"max_guests"`
}

// BookingRequest is the body of POST /api/bookings.
type BookingRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
	UserID         string `json:"user_id" validate:"required"`
	EventID        ID     `json:"event_id" validate:"required"`
	PackageID      ID     `json:"package_id" validate:"required"`
	Guests         int    `json:"guests" validate:"gte=1"`
	Date           string `json:"date" validate:"required"`
	Notes          string `json:"notes,omitempty" validate:"max=500"`
}

// BookingResponse is the raw backend answer.
type BookingResponse struct {
	BookingID            ID     `json:"bookingId,omitempty"`
	Status               string `json:"status,omitempty"`
	RequiresVerification bool   `json:"requiresVerification,omitempty"`
	VerificationURL      string `json:"verificationUrl,omitempty"`
	Message              string `json:"message,omitempty"`
}
