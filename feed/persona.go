package feed

import (
	"sort"
	"strings"

	"lumina/models"
)

// Weigher scores an item for a persona; higher scores sort earlier.
type Weigher interface {
	Weight(item Item, p *models.Persona) int
}

// WeigherFunc adapts a function to Weigher.
type WeigherFunc func(item Item, p *models.Persona) int

func (f WeigherFunc) Weight(item Item, p *models.Persona) int { return f(item, p) }

// PersonaSort returns items reordered by descending weight. Ties keep their
// input order. A nil persona or weigher returns an unchanged copy. items is
// never modified.
func PersonaSort[T Item](items []T, p *models.Persona, w Weigher) []T {
	out := make([]T, len(items))
	copy(out, items)
	if p == nil || w == nil || len(out) < 2 {
		return out
	}

	// Weights follow positions, not ids, so items without an id keep their own.
	idx := make([]int, len(items))
	weights := make([]int, len(items))
	for i, it := range items {
		idx[i] = i
		weights[i] = w.Weight(it, p)
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return weights[idx[i]] > weights[idx[j]]
	})
	for i, k := range idx {
		out[i] = items[k]
	}
	return out
}

var (
	romanticKeywords = []string{"romantic", "intimate", "cozy", "candle", "wine", "date"}
	socialKeywords   = []string{"club", "dance", "party", "social", "group", "late"}
)

// TagWeigher is the built-in keyword weighting: couples are nudged towards
// romantic spots, singles towards social ones, and every music preference
// that appears in the item's fields adds to its score.
type TagWeigher struct{}

func (TagWeigher) Weight(item Item, p *models.Persona) int {
	if p == nil {
		return 0
	}
	fields := item.MatchFields()
	score := 0

	if p.IsPartnered() {
		if containsAny(fields, romanticKeywords) {
			score += 2
		}
	} else if p.RelationshipStatus == models.RelationshipSingle {
		if containsAny(fields, socialKeywords) {
			score += 2
		}
	}

	for _, pref := range p.MusicPreferences {
		pref = strings.ToLower(strings.TrimSpace(pref))
		if pref != "" && containsAny(fields, []string{pref}) {
			score += 3
		}
	}
	return score
}

// MusicMatchScore counts how many of prefs appear in the item's fields.
func MusicMatchScore(item Item, prefs []string) int {
	fields := item.MatchFields()
	score := 0
	for _, pref := range prefs {
		pref = strings.ToLower(strings.TrimSpace(pref))
		if pref != "" && containsAny(fields, []string{pref}) {
			score++
		}
	}
	return score
}
