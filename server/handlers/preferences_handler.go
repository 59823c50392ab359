package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	services "lumina/service"
)

type cityBody struct {
	City string `json:"city"`
}

type PreferencesHandler struct {
	store *services.PreferencesStore
	log   *zap.SugaredLogger
}

func NewPreferencesHandler(store *services.PreferencesStore, log *zap.SugaredLogger) *PreferencesHandler {
	return &PreferencesHandler{store: store, log: log}
}

// GetCity handles GET /v1/preferences/city
func (h *PreferencesHandler) GetCity(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cityBody{City: h.store.SelectedCity()}, h.log)
}

// PutCity handles PUT /v1/preferences/city with {"city": "..."}.
func (h *PreferencesHandler) PutCity(w http.ResponseWriter, r *http.Request) {
	var body cityBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.City) == "" {
		writeError(w, http.StatusBadRequest, "Invalid body: city is required", h.log)
		return
	}
	if err := h.store.SetSelectedCity(r.Context(), body.City); err != nil {
		h.log.Errorf("[PreferencesHandler] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	writeJSON(w, http.StatusOK, cityBody{City: h.store.SelectedCity()}, h.log)
}
