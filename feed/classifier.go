package feed

import (
	"strconv"
	"strings"
	"time"
)

// Item is anything the feed can place in a section: venues and events.
type Item interface {
	ItemID() string
	MatchFields() []string
	DateString() string
}

// Category is a fixed Explore section label.
type Category string

const (
	CategoryTonight   Category = "Tonight"
	CategoryWeekend   Category = "This Weekend"
	CategoryAfrobeats Category = "Afrobeats Parties"
	CategoryHipHop    Category = "Hip-Hop & R&B"
	CategoryHouse     Category = "House & Techno"
	CategoryLatin     Category = "Latin Nights"
	CategoryRooftops  Category = "Rooftops"
	CategoryLounges   Category = "Lounges"
	CategoryLiveMusic Category = "Live Music"
	CategoryAll       Category = "All"
)

// CategoryOrder is the priority in which sections claim items.
var CategoryOrder = []Category{
	CategoryTonight,
	CategoryWeekend,
	CategoryAfrobeats,
	CategoryHipHop,
	CategoryHouse,
	CategoryLatin,
	CategoryRooftops,
	CategoryLounges,
	CategoryLiveMusic,
	CategoryAll,
}

// keywords are matched as lowercase substrings.
var keywords = map[Category][]string{
	CategoryAfrobeats: {"afrobeat", "amapiano", "afro house", "afropop", "afro-pop", "naija"},
	CategoryHipHop:    {"hip hop", "hip-hop", "hiphop", "rap", "r&b", "rnb", "trap"},
	CategoryHouse:     {"house", "techno", "edm", "electronic"},
	CategoryLatin:     {"latin", "reggaeton", "salsa", "bachata", "dembow"},
	CategoryRooftops:  {"rooftop", "skyline", "terrace"},
	CategoryLounges:   {"lounge", "hookah", "cocktail"},
	CategoryLiveMusic: {"live music", "live band", "jazz", "acoustic", "concert"},
}

// Keywords returns the keyword list of a genre category (nil for date and
// catch-all categories).
func Keywords(c Category) []string {
	return keywords[c]
}

// Matches reports whether item belongs to category c at instant now.
func Matches(item Item, c Category, now time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	switch c {
	case CategoryAll:
		return true
	case CategoryTonight:
		t, ok := ParseEventDate(item.DateString(), loc)
		return ok && SameDay(t, now, loc)
	case CategoryWeekend:
		t, ok := ParseEventDate(item.DateString(), loc)
		return ok && inUpcomingWeekend(t, now, loc)
	}
	return containsAny(item.MatchFields(), keywords[c])
}

func containsAny(fields []string, words []string) bool {
	for _, f := range fields {
		if f == "" {
			continue
		}
		lower := strings.ToLower(f)
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
	}
	return false
}

// inUpcomingWeekend reports whether t falls between today and the coming
// Sunday inclusive, and on a Friday, Saturday or Sunday.
func inUpcomingWeekend(t, now time.Time, loc *time.Location) bool {
	today := startOfDay(now, loc)
	daysToSunday := (7 - int(today.Weekday())) % 7
	end := today.AddDate(0, 0, daysToSunday+1)

	t = t.In(loc)
	if t.Before(today) || !t.Before(end) {
		return false
	}
	switch t.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	}
	return false
}

// Section is a named bucket of items for one render.
type Section[T Item] struct {
	Category Category `json:"category"`
	Items    []T      `json:"items"`
}

// itemKey identifies an item for de-duplication. Items without an id are
// never duplicates of each other, so they are keyed by position.
func itemKey(it Item, pos int) string {
	if id := it.ItemID(); id != "" {
		return id
	}
	return "#" + strconv.Itoa(pos)
}

// BuildSections assigns items to categories in the given priority order.
// Each item lands in at most one section: the first category it matches
// claims it and later categories never see it. limit caps each section
// (0 means unbounded); items left over by a full section stay available to
// later ones. Empty sections are omitted.
func BuildSections[T Item](items []T, order []Category, now time.Time, loc *time.Location, limit int) []Section[T] {
	pool := make([]T, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		key := itemKey(it, i)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pool = append(pool, it)
	}

	var sections []Section[T]
	for _, c := range order {
		var claimed []T
		rest := pool[:0:0]
		for _, it := range pool {
			if (limit <= 0 || len(claimed) < limit) && Matches(it, c, now, loc) {
				claimed = append(claimed, it)
				continue
			}
			rest = append(rest, it)
		}
		pool = rest
		if len(claimed) > 0 {
			sections = append(sections, Section[T]{Category: c, Items: claimed})
		}
	}
	return sections
}
