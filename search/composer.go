package search

import (
	"lumina/models"
	"lumina/models/event"
	searchmodels "lumina/models/search"
	"lumina/models/venue"
)

// FeaturedConfidenceThreshold is the intent confidence above which the
// first venue is promoted to a top-match card.
const FeaturedConfidenceThreshold = 25

// View is the tiered search screen.
type View struct {
	Query     string               `json:"query"`
	Featured  *venue.Venue         `json:"featured,omitempty"`
	Venues    []venue.Venue        `json:"venues"`
	Events    []event.Event        `json:"events"`
	Promoters []models.Promoter    `json:"promoters"`
	Intent    *searchmodels.Intent `json:"intent,omitempty"`
	AIPowered bool                 `json:"ai_powered"`
}

// Empty reports whether the view has nothing to show.
func (v View) Empty() bool {
	return v.Featured == nil && len(v.Venues) == 0 && len(v.Events) == 0 && len(v.Promoters) == 0
}

// Compose decides display tiering for a search response. The first venue is
// featured only when the intent confidence is strictly above the threshold;
// it is then left out of the plain venue list. Events and promoters are
// passed through untouched.
func Compose(query string, resp *searchmodels.SearchResponse) View {
	view := View{
		Query:     query,
		Venues:    []venue.Venue{},
		Events:    []event.Event{},
		Promoters: []models.Promoter{},
	}
	if resp == nil {
		return view
	}

	view.Intent = resp.Intent
	view.AIPowered = resp.AIPowered
	if resp.Events != nil {
		view.Events = resp.Events
	}
	if resp.Promoters != nil {
		view.Promoters = resp.Promoters
	}

	venues := resp.Venues
	if resp.Intent != nil && resp.Intent.Confidence > FeaturedConfidenceThreshold && len(venues) > 0 {
		featured := venues[0]
		view.Featured = &featured
		venues = venues[1:]
	}
	view.Venues = append(view.Venues, venues...)

	return view
}
