package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"lumina/api/lumina"
	"lumina/config"
	"lumina/search"
)

// SearchService turns keystrokes into debounced backend searches and
// publishes the composed view to a listener.
type SearchService struct {
	luminaAPI lumina.LuminaAPI
	prefs     *PreferencesStore
	log       *zap.SugaredLogger
	limit     int

	debouncer *search.Debouncer

	mu       sync.Mutex
	seq      uint64
	listener func(search.View)
}

// NewSearchService wires a debouncer with the given quiet period.
func NewSearchService(luminaAPI lumina.LuminaAPI, prefs *PreferencesStore, delay time.Duration, log *zap.SugaredLogger) *SearchService {
	ss := &SearchService{
		luminaAPI: luminaAPI,
		prefs:     prefs,
		log:       log,
		limit:     config.LUMINA_SEARCH_LIMIT,
	}
	ss.debouncer = search.NewDebouncer(delay, config.SEARCH_MIN_QUERY_LENGTH, ss.fire)
	return ss
}

// OnResults sets the listener that receives views produced by Type.
func (ss *SearchService) OnResults(fn func(search.View)) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.listener = fn
}

// Type feeds one keystroke's worth of query text.
func (ss *SearchService) Type(query string) {
	ss.debouncer.Input(query)
}

// Close stops the debouncer. Pending queries are dropped.
func (ss *SearchService) Close() {
	ss.debouncer.Stop()
}

func (ss *SearchService) fire(query string) {
	ss.mu.Lock()
	ss.seq++
	seq := ss.seq
	ss.mu.Unlock()

	view := ss.Search(context.Background(), query, ss.limit)

	ss.mu.Lock()
	listener := ss.listener
	current := seq == ss.seq
	ss.mu.Unlock()

	// a newer query fired while this one was in flight
	if !current {
		ss.log.Debugf("[SearchService] Dropping stale results for %q", query)
		return
	}
	if listener != nil {
		listener(view)
	}
}

// Search runs one query right away and records it in recent searches.
// Failures are logged and produce an empty view.
func (ss *SearchService) Search(ctx context.Context, query string, limit int) search.View {
	query = strings.TrimSpace(query)
	if limit <= 0 {
		limit = ss.limit
	}

	resp, err := ss.luminaAPI.Search(ctx, query, limit)
	if err != nil {
		ss.log.Errorf("[SearchService] Search failed for %q: %v", query, err)
		return search.Compose(query, nil)
	}

	if err := ss.prefs.AddRecentSearch(ctx, query); err != nil {
		ss.log.Warnf("[SearchService] Could not record recent search %q: %v", query, err)
	}
	return search.Compose(query, resp)
}
