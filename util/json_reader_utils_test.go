package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/models/venue"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadVenuesResponseFromJSON(t *testing.T) {
	// Arrange
	path := createTempFile(t, `{
		"venues": [
			{"id": 1, "name": "Sky Lounge", "rating": 4.6, "photo_url": "a.jpg", "vibe_tags": "rooftop,romantic"}
		]
	}`)

	// Act
	response, err := ReadVenuesResponseFromJSON(path)

	// Assert
	require.NoError(t, err)
	require.Len(t, response.Venues, 1)
	assert.Equal(t, "1", response.Venues[0].ItemID())
	assert.Equal(t, "Sky Lounge", response.Venues[0].Name)
	assert.True(t, response.Venues[0].VibeTags.Contains("romantic"))
}

func TestReadEventsResponseFromJSON(t *testing.T) {
	path := createTempFile(t, `{"events": [{"id": "e1", "title": "Afro Night", "event_date": "2025-01-30"}]}`)

	response, err := ReadEventsResponseFromJSON(path)

	require.NoError(t, err)
	require.Len(t, response.Events, 1)
	assert.Equal(t, "2025-01-30", response.Events[0].DateString())
}

func TestReadSearchResponseFromJSON(t *testing.T) {
	path := createTempFile(t, `{"venues": [], "events": [], "promoters": [{"id": 9, "handle": "dj"}], "intent": {"reasoning": "x", "confidence": 40}, "aiPowered": true}`)

	response, err := ReadSearchResponseFromJSON(path)

	require.NoError(t, err)
	assert.Equal(t, 40.0, response.Intent.Confidence)
	assert.True(t, response.AIPowered)
	assert.Equal(t, "dj", response.Promoters[0].Handle)
}

func TestReadJSONFile_Errors(t *testing.T) {
	_, err := ReadVenuesResponseFromJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := createTempFile(t, `{"venues": [`)
	_, err = ReadJSONFile[venue.VenuesResponse](path)
	assert.Error(t, err)
}

func TestPrintVenuesPartially(t *testing.T) {
	// This test validates that the function doesn't panic.
	PrintVenuesPartially([]venue.Venue{{ID: "1", Name: "Test Venue"}})
}
