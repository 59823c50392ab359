package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"lumina/config"
	services "lumina/service"
)

const (
	QUERY_QUERY_ARG = "q"
	LIMIT_QUERY_ARG = "limit"
)

type SearchHandler struct {
	searchService *services.SearchService
	log           *zap.SugaredLogger
}

func NewSearchHandler(searchService *services.SearchService, log *zap.SugaredLogger) *SearchHandler {
	return &SearchHandler{searchService: searchService, log: log}
}

// Search handles GET /v1/search?q=&limit=
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query, limit, ok := h.parseArgs(w, r)
	if !ok {
		return // error already written
	}
	view := h.searchService.Search(r.Context(), query, limit)
	writeJSON(w, http.StatusOK, view, h.log)
}

func (h *SearchHandler) parseArgs(w http.ResponseWriter, r *http.Request) (query string, limit int, ok bool) {
	vals := r.URL.Query()

	query = strings.TrimSpace(vals.Get(QUERY_QUERY_ARG))
	if len([]rune(query)) < config.SEARCH_MIN_QUERY_LENGTH {
		writeError(w, http.StatusBadRequest, "Invalid argument "+QUERY_QUERY_ARG, h.log)
		return
	}

	limit = config.LUMINA_SEARCH_LIMIT
	if raw := vals.Get(LIMIT_QUERY_ARG); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "Invalid argument "+LIMIT_QUERY_ARG, h.log)
			return
		}
		limit = n
	}
	ok = true
	return
}
