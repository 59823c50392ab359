package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	services "lumina/service"
	"lumina/util"
)

const CITY_QUERY_ARG = "city"

type FeedHandler struct {
	feedService *services.FeedService
	log         *zap.SugaredLogger
}

func NewFeedHandler(feedService *services.FeedService, log *zap.SugaredLogger) *FeedHandler {
	return &FeedHandler{feedService: feedService, log: log}
}

func cityArg(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get(CITY_QUERY_ARG))
}

// GetHomeFeed handles GET /v1/feed?city=
func (h *FeedHandler) GetHomeFeed(w http.ResponseWriter, r *http.Request) {
	home := h.feedService.LoadHomeFeed(r.Context(), cityArg(r))
	writeJSON(w, http.StatusOK, home, h.log)
}

// GetFeedReport handles GET /v1/feed/report?city= and renders the section
// sizes of the home feed as an HTML chart.
func (h *FeedHandler) GetFeedReport(w http.ResponseWriter, r *http.Request) {
	city := h.feedService.ResolveCity(cityArg(r))
	home := h.feedService.LoadHomeFeed(r.Context(), city)

	var buf bytes.Buffer
	if err := util.PlotFeedSections(fmt.Sprintf("%s home feed", city), home.SectionSizes(), &buf); err != nil {
		h.log.Errorf("[FeedHandler] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// GetExplore handles GET /v1/explore?city=
func (h *FeedHandler) GetExplore(w http.ResponseWriter, r *http.Request) {
	explore := h.feedService.LoadExplore(r.Context(), cityArg(r))
	writeJSON(w, http.StatusOK, explore, h.log)
}

// Ping handles GET /ping
func (h *FeedHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"}, h.log)
}
