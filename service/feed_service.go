package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"lumina/api/lumina"
	"lumina/config"
	"lumina/feed"
	"lumina/models"
	"lumina/models/event"
	"lumina/models/venue"
)

// FeedService fetches the raw lists for a city and composes the home feed
// and the Explore tab.
type FeedService struct {
	luminaAPI lumina.LuminaAPI
	prefs     *PreferencesStore
	log       *zap.SugaredLogger

	loc           *time.Location
	now           func() time.Time
	remoteWeights bool
}

// NewFeedService constructs a FeedService. loc is the city's local zone; nil
// means time.Local.
func NewFeedService(luminaAPI lumina.LuminaAPI, prefs *PreferencesStore, loc *time.Location, log *zap.SugaredLogger) *FeedService {
	if loc == nil {
		loc = time.Local
	}
	return &FeedService{
		luminaAPI: luminaAPI,
		prefs:     prefs,
		log:       log,
		loc:       loc,
		now:       time.Now,
	}
}

// UseRemoteWeights switches persona ordering to the backend ranking
// endpoint. The keyword weigher is used otherwise.
func (fs *FeedService) UseRemoteWeights(enabled bool) {
	fs.remoteWeights = enabled
}

// Location returns the zone feeds are composed in.
func (fs *FeedService) Location() *time.Location {
	return fs.loc
}

// ResolveCity returns city, or the selected city when city is empty.
func (fs *FeedService) ResolveCity(city string) string {
	if city != "" {
		return city
	}
	return fs.prefs.SelectedCity()
}

// fetch issues the venue and event requests concurrently. A failed side is
// logged and comes back empty; the other side is unaffected.
func (fs *FeedService) fetch(ctx context.Context, city string) ([]venue.Venue, []event.Event) {
	var venues []venue.Venue
	var events []event.Event
	var venuesErr, eventsErr error

	// A plain Group: one side failing must not cancel the other.
	var g errgroup.Group
	g.Go(func() error {
		venues, venuesErr = fs.luminaAPI.GetVenues(ctx, models.ListParams{City: city, Limit: config.LUMINA_VENUES_LIMIT})
		return venuesErr
	})
	g.Go(func() error {
		events, eventsErr = fs.luminaAPI.GetEvents(ctx, models.ListParams{City: city, Limit: config.LUMINA_EVENTS_LIMIT})
		return eventsErr
	})
	if err := g.Wait(); err != nil {
		if venuesErr != nil {
			fs.log.Errorf("[FeedService] GetVenues failed for city=%q: %v", city, venuesErr)
			venues = nil
		}
		if eventsErr != nil {
			fs.log.Errorf("[FeedService] GetEvents failed for city=%q: %v", city, eventsErr)
			events = nil
		}
	}

	if venues == nil {
		venues = []venue.Venue{}
	}
	if events == nil {
		events = []event.Event{}
	}
	return venues, events
}

// LoadHomeFeed fetches venues and events for city (the selected city when
// empty) and assembles the home feed. It always returns a feed; sides that
// failed to load are empty.
func (fs *FeedService) LoadHomeFeed(ctx context.Context, city string) feed.HomeFeed {
	city = fs.ResolveCity(city)
	venues, events := fs.fetch(ctx, city)
	persona := fs.prefs.Persona()

	var weigher feed.Weigher
	if fs.remoteWeights && persona != nil && persona.PersonaID != "" {
		weigher = NewRemoteWeigher(ctx, fs.luminaAPI, persona.PersonaID, venues, fs.log)
	}

	home := feed.NewAssembler(weigher).Assemble(feed.Input{
		Venues:           venues,
		Events:           events,
		Persona:          persona,
		MusicPreferences: fs.prefs.MusicPreferences(),
		Now:              fs.now().In(fs.loc),
	})

	fs.log.Infof("[FeedService] Home feed for %q: venues=%d events=%d hero=%d picked=%d date=%d late=%d events=%d",
		city, len(venues), len(events), len(home.Hero), len(home.PickedForYou),
		len(home.DateNight), len(home.LateNight), len(home.Events))
	return home
}

// LoadExplore fetches the same lists and groups them into category sections.
func (fs *FeedService) LoadExplore(ctx context.Context, city string) feed.Explore {
	city = fs.ResolveCity(city)
	venues, events := fs.fetch(ctx, city)
	return feed.BuildExplore(venues, events, fs.now().In(fs.loc), fs.loc)
}
