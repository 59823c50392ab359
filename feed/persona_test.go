package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lumina/models"
	"lumina/models/venue"
)

func venueIDs(vs []venue.Venue) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ItemID()
	}
	return out
}

func TestPersonaSort_NilPersonaIsIdentity(t *testing.T) {
	venues := []venue.Venue{{ID: "1"}, {ID: "2", VibeTags: models.Tags{"romantic"}}, {ID: "3"}}

	got := PersonaSort(venues, nil, TagWeigher{})

	assert.Equal(t, []string{"1", "2", "3"}, venueIDs(got))
}

func TestPersonaSort_PartneredPrefersRomanticAndIsStable(t *testing.T) {
	venues := []venue.Venue{
		{ID: "1", Category: "Sports Bar"},
		{ID: "2", VibeTags: models.Tags{"cozy"}},
		{ID: "3", Category: "Club"},
		{ID: "4", VibeTags: models.Tags{"romantic"}},
	}
	persona := &models.Persona{RelationshipStatus: models.RelationshipCoupled}

	got := PersonaSort(venues, persona, TagWeigher{})

	assert.Equal(t, []string{"2", "4", "1", "3"}, venueIDs(got))
	// input untouched
	assert.Equal(t, []string{"1", "2", "3", "4"}, venueIDs(venues))
}

func TestPersonaSort_MusicPreferencesOutweighRelationship(t *testing.T) {
	venues := []venue.Venue{
		{ID: "1", Category: "Club"},
		{ID: "2", Genre: "Amapiano"},
	}
	persona := &models.Persona{RelationshipStatus: models.RelationshipSingle, MusicPreferences: []string{"Amapiano"}}

	got := PersonaSort(venues, persona, TagWeigher{})

	assert.Equal(t, []string{"2", "1"}, venueIDs(got))
}

func TestPersonaSort_CustomWeigher(t *testing.T) {
	venues := []venue.Venue{{ID: "1", Rating: 3}, {ID: "2", Rating: 5}, {ID: "3", Rating: 4}}
	byRating := WeigherFunc(func(item Item, _ *models.Persona) int {
		return int(item.(venue.Venue).Rating)
	})

	got := PersonaSort(venues, &models.Persona{}, byRating)

	assert.Equal(t, []string{"2", "3", "1"}, venueIDs(got))
}

func TestMusicMatchScore(t *testing.T) {
	v := venue.Venue{Genre: "Afrobeats / Amapiano"}

	assert.Equal(t, 2, MusicMatchScore(v, []string{"afrobeats", "AMAPIANO", "techno", " "}))
	assert.Equal(t, 0, MusicMatchScore(v, nil))
}

func TestPersonaSort_VenuesWithoutIDKeepTheirOwnWeight(t *testing.T) {
	venues := []venue.Venue{
		{Name: "Plain"},
		{Name: "Candlelight", VibeTags: models.Tags{"romantic"}},
	}
	persona := &models.Persona{RelationshipStatus: models.RelationshipCoupled}

	got := PersonaSort(venues, persona, TagWeigher{})

	assert.Equal(t, "Candlelight", got[0].Name)
	assert.Equal(t, "Plain", got[1].Name)
}
