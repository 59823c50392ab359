package search

import (
	"lumina/models"
	"lumina/models/event"
	"lumina/models/venue"
)

// Intent is the backend's explanation of how it read a query.
type Intent struct {
	Reasoning  string   `json:"reasoning"`
	Confidence float64  `json:"confidence"`
	MatchTags  []string `json:"matchTags,omitempty"`
	Category   string   `json:"category,omitempty"`
	Mood       string   `json:"mood,omitempty"`
}

// SearchResponse wraps GET /api/search.
type SearchResponse struct {
	Venues    []venue.Venue     `json:"venues"`
	Events    []event.Event     `json:"events"`
	Promoters []models.Promoter `json:"promoters"`
	Intent    *Intent           `json:"intent,omitempty"`
	AIPowered bool              `json:"aiPowered"`
}
