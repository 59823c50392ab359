package feed

import (
	"sort"
	"time"

	"lumina/models"
	"lumina/models/event"
	"lumina/models/venue"
)

const (
	HeroLimit      = 5
	PickedLimit    = 10
	DateNightLimit = 6
	LateNightLimit = 6
	EventsLimit    = 8

	HeroMinRating = 4.3
)

var (
	dateNightKeywords = []string{"romantic", "intimate", "cozy"}
	lateNightKeywords = []string{"late", "club", "dance", "nightclub", "lounge", "bar"}
)

// HomeFeed is the composed home screen.
type HomeFeed struct {
	Seed         int           `json:"seed"`
	Hero         []venue.Venue `json:"hero"`
	PickedForYou []venue.Venue `json:"picked_for_you"`
	DateNight    []venue.Venue `json:"date_night"`
	LateNight    []venue.Venue `json:"late_night"`
	Events       []event.Event `json:"events"`
}

// SectionSizes returns the number of items per home section, in display order.
func (f HomeFeed) SectionSizes() []SectionSize {
	return []SectionSize{
		{"Hero", len(f.Hero)},
		{"Picked For You", len(f.PickedForYou)},
		{"Date Night", len(f.DateNight)},
		{"Late Night", len(f.LateNight)},
		{"Events", len(f.Events)},
	}
}

// SectionSize is a label and count pair used for reporting.
type SectionSize struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Input is everything the assembler needs for one render.
type Input struct {
	Venues           []venue.Venue
	Events           []event.Event
	Persona          *models.Persona
	MusicPreferences []string
	Now              time.Time
}

// Assembler builds the home feed. It holds no state between renders.
type Assembler struct {
	weigher Weigher
}

// NewAssembler returns an assembler using w for persona ordering. A nil w
// falls back to TagWeigher.
func NewAssembler(w Weigher) *Assembler {
	if w == nil {
		w = TagWeigher{}
	}
	return &Assembler{weigher: w}
}

// Assemble composes the home feed. Venue buckets are filled in a fixed
// order and every bucket skips venues already claimed by an earlier one, so
// no venue is shown twice.
func (a *Assembler) Assemble(in Input) HomeFeed {
	seed := DailySeed(in.Now)
	venues := Shuffle(in.Venues, seed)
	events := Shuffle(in.Events, seed+1)

	venues = PersonaSort(venues, withMusic(in.Persona, in.MusicPreferences), a.weigher)

	claimed := make(map[string]struct{})
	take := func(limit int, ok func(v venue.Venue) bool) []venue.Venue {
		out := make([]venue.Venue, 0, limit)
		for i, v := range venues {
			if len(out) == limit {
				break
			}
			key := itemKey(v, i)
			if _, dup := claimed[key]; dup {
				continue
			}
			if !v.HasPhoto() || !ok(v) {
				continue
			}
			claimed[key] = struct{}{}
			out = append(out, v)
		}
		return out
	}

	feed := HomeFeed{Seed: seed}
	feed.Hero = take(HeroLimit, func(v venue.Venue) bool {
		return v.Rating >= HeroMinRating
	})
	feed.PickedForYou = take(PickedLimit, func(venue.Venue) bool { return true })
	feed.DateNight = take(DateNightLimit, func(v venue.Venue) bool {
		return v.DateSpot || v.VibeTags.Contains(dateNightKeywords...)
	})
	feed.LateNight = take(LateNightLimit, func(v venue.Venue) bool {
		return v.LateNight ||
			v.VibeTags.Contains(lateNightKeywords...) ||
			containsAny([]string{v.Category}, lateNightKeywords)
	})
	feed.Events = pickEvents(events, in.MusicPreferences)

	return feed
}

// pickEvents orders events by music-preference match (stable) and keeps
// the first EventsLimit that have an image.
func pickEvents(events []event.Event, prefs []string) []event.Event {
	scores := make([]int, len(events))
	idx := make([]int, len(events))
	for i, e := range events {
		scores[i] = MusicMatchScore(e, prefs)
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return scores[idx[i]] > scores[idx[j]]
	})

	out := make([]event.Event, 0, EventsLimit)
	seen := make(map[string]struct{}, EventsLimit)
	for _, i := range idx {
		if len(out) == EventsLimit {
			break
		}
		e := events[i]
		if !e.HasImage() {
			continue
		}
		key := itemKey(e, i)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}

func withMusic(p *models.Persona, prefs []string) *models.Persona {
	if p == nil {
		return nil
	}
	cp := *p
	if len(cp.MusicPreferences) == 0 {
		cp.MusicPreferences = prefs
	}
	return &cp
}
