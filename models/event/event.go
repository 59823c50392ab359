package event

import (
	"fmt"
	"regexp"
	"strings"

	"lumina/models"
)

// Event is a dated party or show as served by /api/events.
type Event struct {
	ID    models.ID `json:"id"`
	Title string    `json:"title"`

	// The backend has used several names for the date over time.
	Date      string `json:"date,omitempty"`
	EventDate string `json:"event_date,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	Time      string `json:"time,omitempty"`

	VenueID      models.ID   `json:"venue_id,omitempty"`
	VenueName    string      `json:"venue_name,omitempty"`
	VenueAddress string      `json:"venue_address,omitempty"`
	City         string      `json:"city,omitempty"`
	Genre        string      `json:"genre,omitempty"`
	Tags         models.Tags `json:"tags,omitempty"`
	ImageURL     string      `json:"image_url,omitempty"`
	FlyerURL     string      `json:"flyer_url,omitempty"`
	PromoterID   models.ID   `json:"promoter_id,omitempty"`

	Packages []models.BookingPackage `json:"packages,omitempty"`
}

// EventsResponse wraps GET /api/events.
type EventsResponse struct {
	Events []Event `json:"events"`
}

var clockTime = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// DateString returns the first populated date field. A date-only value is
// combined with a separate HH:MM time when one is present.
func (e Event) DateString() string {
	for _, d := range []string{e.Date, e.EventDate, e.StartDate, e.StartTime} {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		t := strings.TrimSpace(e.Time)
		if !strings.Contains(d, "T") && clockTime.MatchString(t) {
			if len(t) == 4 {
				t = "0" + t
			}
			return d + "T" + t
		}
		return d
	}
	return ""
}

// Image returns the card image or "".
func (e Event) Image() string {
	for _, ref := range []string{e.ImageURL, e.FlyerURL} {
		ref = strings.TrimSpace(ref)
		switch strings.ToLower(ref) {
		case "", "null", "undefined", "none":
			continue
		}
		return ref
	}
	return ""
}

// HasImage reports whether the event can be rendered on an image card.
func (e Event) HasImage() bool { return e.Image() != "" }

// ItemID implements feed.Item.
func (e Event) ItemID() string { return string(e.ID) }

// MatchFields returns the free-text fields keyword rules run against.
func (e Event) MatchFields() []string {
	fields := []string{e.Title, e.Genre, e.VenueName}
	return append(fields, e.Tags...)
}

func (e *Event) ToString() string {
	return fmt.Sprintf("Event(id=%s, title=%s, date=%s, venue=%s)",
		e.ID, e.Title, e.DateString(), e.VenueName)
}
