package feed

import (
	"sort"
	"time"

	"lumina/models/event"
	"lumina/models/venue"
)

// ExploreSectionLimit caps each Explore section.
const ExploreSectionLimit = 12

// Explore is the sectioned Explore tab.
type Explore struct {
	Events []Section[event.Event] `json:"events"`
	Venues []Section[venue.Venue] `json:"venues"`
}

// BuildExplore sections upcoming events by date and genre and venues by
// genre. Past events are dropped and the rest are ordered by start time,
// undated ones last.
func BuildExplore(venues []venue.Venue, events []event.Event, now time.Time, loc *time.Location) Explore {
	if loc == nil {
		loc = time.Local
	}
	upcoming := UpcomingEvents(events, now, loc)

	venueOrder := make([]Category, 0, len(CategoryOrder))
	for _, c := range CategoryOrder {
		if c != CategoryTonight && c != CategoryWeekend {
			venueOrder = append(venueOrder, c)
		}
	}

	return Explore{
		Events: BuildSections(upcoming, CategoryOrder, now, loc, ExploreSectionLimit),
		Venues: BuildSections(venues, venueOrder, now, loc, ExploreSectionLimit),
	}
}

// UpcomingEvents drops events that started before today and sorts the rest
// chronologically. Events without a parseable date are kept at the end in
// input order.
func UpcomingEvents(events []event.Event, now time.Time, loc *time.Location) []event.Event {
	today := startOfDay(now, loc)

	type dated struct {
		e  event.Event
		at time.Time
		ok bool
	}
	list := make([]dated, 0, len(events))
	for _, e := range events {
		at, ok := ParseEventDate(e.DateString(), loc)
		if ok && at.Before(today) {
			continue
		}
		list = append(list, dated{e: e, at: at, ok: ok})
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].ok != list[j].ok {
			return list[i].ok
		}
		if !list[i].ok {
			return false
		}
		return list[i].at.Before(list[j].at)
	})

	out := make([]event.Event, len(list))
	for i, d := range list {
		out[i] = d.e
	}
	return out
}

// Filter returns the items that match category c, in input order.
func Filter[T Item](items []T, c Category, now time.Time, loc *time.Location) []T {
	var out []T
	for _, it := range items {
		if Matches(it, c, now, loc) {
			out = append(out, it)
		}
	}
	return out
}
