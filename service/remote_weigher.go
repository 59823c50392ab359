package services

import (
	"context"

	"go.uber.org/zap"

	"lumina/feed"
	"lumina/models"
)

// personaSorter is the slice of the API used for server-side persona ranking.
type personaSorter interface {
	SortForPersona(ctx context.Context, personaID string, itemIDs []string) ([]string, error)
}

// NewRemoteWeigher asks the backend to rank items for personaID once and
// returns a Weigher that reproduces that ranking. Items the backend did not
// return weigh zero and keep their relative order. When the call fails the
// returned Weigher weighs everything zero, which leaves the input order as is.
func NewRemoteWeigher[T feed.Item](ctx context.Context, sorter personaSorter, personaID string, items []T, log *zap.SugaredLogger) feed.Weigher {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ItemID()
	}

	ranked, err := sorter.SortForPersona(ctx, personaID, ids)
	if err != nil {
		log.Warnf("[RemoteWeigher] SortForPersona failed, keeping input order: %v", err)
		return feed.WeigherFunc(func(feed.Item, *models.Persona) int { return 0 })
	}

	weights := make(map[string]int, len(ranked))
	for i, id := range ranked {
		if _, seen := weights[id]; !seen {
			weights[id] = len(ranked) - i
		}
	}
	return feed.WeigherFunc(func(item feed.Item, _ *models.Persona) int {
		return weights[item.ItemID()]
	})
}
