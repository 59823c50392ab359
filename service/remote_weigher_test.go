package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"lumina/feed"
	"lumina/logger"
	"lumina/models"
	"lumina/models/venue"
)

func venueIDList(vs []venue.Venue) []string {
	ids := make([]string, len(vs))
	for i, v := range vs {
		ids[i] = v.ItemID()
	}
	return ids
}

func testVenues(ids ...string) []venue.Venue {
	out := make([]venue.Venue, len(ids))
	for i, id := range ids {
		out[i] = venue.Venue{ID: models.ID(id), Name: "v" + id}
	}
	return out
}

func TestRemoteWeigher_FollowsBackendOrder(t *testing.T) {
	api := newStubAPI()
	api.sortResult = []string{"c", "a"}
	venues := testVenues("a", "b", "c")
	persona := &models.Persona{PersonaID: "p1"}

	w := NewRemoteWeigher(context.Background(), api, "p1", venues, logger.Nop())
	sorted := feed.PersonaSort(venues, persona, w)

	assert.Equal(t, []string{"c", "a", "b"}, venueIDList(sorted))
}

func TestRemoteWeigher_FailureKeepsInputOrder(t *testing.T) {
	api := newStubAPI()
	api.sortErr = errBoom
	venues := testVenues("a", "b", "c")

	w := NewRemoteWeigher(context.Background(), api, "p1", venues, logger.Nop())
	sorted := feed.PersonaSort(venues, &models.Persona{PersonaID: "p1"}, w)

	assert.Equal(t, []string{"a", "b", "c"}, venueIDList(sorted))
}
