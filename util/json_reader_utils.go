package util

import (
	"encoding/json"
	"fmt"
	"os"

	"lumina/models"
	"lumina/models/event"
	searchmodels "lumina/models/search"
	"lumina/models/venue"
)

// ReadJSONFile loads any JSON document from disk into a T.
func ReadJSONFile[T any](filePath string) (*T, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %q: %w", filePath, err)
	}
	return &out, nil
}

// ReadVenuesResponseFromJSON loads a VenuesResponse fixture.
func ReadVenuesResponseFromJSON(filePath string) (*venue.VenuesResponse, error) {
	return ReadJSONFile[venue.VenuesResponse](filePath)
}

// ReadEventsResponseFromJSON loads an EventsResponse fixture.
func ReadEventsResponseFromJSON(filePath string) (*event.EventsResponse, error) {
	return ReadJSONFile[event.EventsResponse](filePath)
}

// ReadSearchResponseFromJSON loads a SearchResponse fixture.
func ReadSearchResponseFromJSON(filePath string) (*searchmodels.SearchResponse, error) {
	return ReadJSONFile[searchmodels.SearchResponse](filePath)
}

// ReadChatMessagesFromJSON loads a ChatMessagesResponse fixture.
func ReadChatMessagesFromJSON(filePath string) (*models.ChatMessagesResponse, error) {
	return ReadJSONFile[models.ChatMessagesResponse](filePath)
}

// ReadPromoterFromJSON loads a single Promoter fixture.
func ReadPromoterFromJSON(filePath string) (*models.Promoter, error) {
	return ReadJSONFile[models.Promoter](filePath)
}

// PrintVenuesPartially prints a short line per venue. Used by the fixture
// smoke run in main.
func PrintVenuesPartially(venues []venue.Venue) {
	fmt.Printf("Venues: %d\n", len(venues))
	for i := range venues {
		fmt.Println("  " + venues[i].ToString())
	}
}
