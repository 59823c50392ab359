package venue

import (
	"fmt"
	"strings"

	"lumina/models"
)

// Venue is a bar, club, lounge or restaurant as served by /api/venues.
type Venue struct {
	ID           models.ID   `json:"id"`
	Name         string      `json:"name"`
	Neighborhood string      `json:"neighborhood,omitempty"`
	City         string      `json:"city,omitempty"`
	Address      string      `json:"address,omitempty"`
	Category     string      `json:"category,omitempty"`
	Cuisine      string      `json:"cuisine,omitempty"`
	Genre        string      `json:"genre,omitempty"`
	Rating       float64     `json:"rating,omitempty"`
	PriceLevel   int         `json:"price_level,omitempty"`
	VibeTags     models.Tags `json:"vibe_tags,omitempty"`
	PhotoURL     string      `json:"photo_url,omitempty"`
	Photos       []string    `json:"photos,omitempty"`
	Latitude     float64     `json:"latitude,omitempty"`
	Longitude    float64     `json:"longitude,omitempty"`

	// Contextual flags computed by the backend.
	DateSpot             bool `json:"date_spot,omitempty"`
	ConversationFriendly bool `json:"conversation_friendly,omitempty"`
	GroupFriendly        bool `json:"group_friendly,omitempty"`
	LateNight            bool `json:"late_night,omitempty"`
}

// VenuesResponse wraps GET /api/venues.
type VenuesResponse struct {
	Venues []Venue `json:"venues"`
}

// PrimaryPhoto returns the first usable photo reference or "".
func (v Venue) PrimaryPhoto() string {
	if usablePhoto(v.PhotoURL) {
		return strings.TrimSpace(v.PhotoURL)
	}
	for _, p := range v.Photos {
		if usablePhoto(p) {
			return strings.TrimSpace(p)
		}
	}
	return ""
}

// HasPhoto reports whether the venue can be rendered on an image card.
func (v Venue) HasPhoto() bool {
	return v.PrimaryPhoto() != ""
}

func usablePhoto(ref string) bool {
	ref = strings.TrimSpace(ref)
	switch strings.ToLower(ref) {
	case "", "null", "undefined", "none":
		return false
	}
	return true
}

// ItemID implements feed.Item.
func (v Venue) ItemID() string { return string(v.ID) }

// MatchFields returns the free-text fields keyword rules run against.
func (v Venue) MatchFields() []string {
	fields := []string{v.Name, v.Category, v.Cuisine, v.Genre}
	return append(fields, v.VibeTags...)
}

// DateString implements feed.Item. Venues are not dated.
func (v Venue) DateString() string { return "" }

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, neighborhood=%s, rating=%.1f)",
		v.ID, v.Name, v.Neighborhood, v.Rating)
}
