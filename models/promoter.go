package models

// Promoter is a partner account (promoter or venue operator).
type Promoter struct {
	ID            ID     `json:"id"`
	Handle        string `json:"handle"`
	DisplayName   string `json:"display_name"`
	FollowerCount int    `json:"follower_count"`
	Genres        Tags   `json:"genres,omitempty"`
	Verified      bool   `json:"verified"`
	AvatarURL     string `json:"avatar_url,omitempty"`
	Bio           string `json:"bio,omitempty"`
	VenueIDs      []ID   `json:"venue_ids,omitempty"`
	EventIDs      []ID   `json:"event_ids,omitempty"`
}

// PartnerApplication is submitted from the partner portal sign-up form.
type PartnerApplication struct {
	BusinessName string `json:"business_name" validate:"required"`
	ContactName  string `json:"contact_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone,omitempty"`
	City         string `json:"city" validate:"required"`
	PartnerType  string `json:"partner_type" validate:"required,oneof=promoter venue"`
	Instagram    string `json:"instagram,omitempty"`
}

// PartnerApplicationResult is the backend acknowledgement.
type PartnerApplicationResult struct {
	ApplicationID ID     `json:"application_id"`
	Status        string `json:"status"`
}

// PartnerStats are the portal dashboard counters.
type PartnerStats struct {
	PromoterID     ID      `json:"promoter_id"`
	Followers      int     `json:"followers"`
	UpcomingEvents int     `json:"upcoming_events"`
	BookingsTotal  int     `json:"bookings_total"`
	BookingsWeek   int     `json:"bookings_week"`
	Revenue        float64 `json:"revenue"`
	ProfileViews   int     `json:"profile_views"`
}

// SeatingLayout is a persisted floor plan for a partner venue.
type SeatingLayout struct {
	ID      ID            `json:"id,omitempty"`
	Name    string        `json:"name" validate:"required"`
	VenueID ID            `json:"venue_id,omitempty"`
	Width   int           `json:"width" validate:"gt=0"`
	Height  int           `json:"height" validate:"gt=0"`
	Tables  []LayoutTable `json:"tables" validate:"dive"`
}

// LayoutTable is one bookable table or section in a layout.
type LayoutTable struct {
	ID       string  `json:"id" validate:"required"`
	Label    string  `json:"label"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Capacity int     `json:"capacity" validate:"gte=1"`
	MinSpend float64 `json:"min_spend,omitempty"`
}
