package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"lumina/models"
	services "lumina/service"
)

const PLAN_ID_PATH_ARG = "planID"

type favoriteBody struct {
	ItemType models.ItemType `json:"item_type"`
	ItemID   models.ID       `json:"item_id"`
}

type planBody struct {
	Title string `json:"title"`
}

type planItemBody struct {
	ItemType models.ItemType `json:"item_type"`
	ItemID   models.ID       `json:"item_id"`
	Note     string          `json:"note,omitempty"`
}

type partnerSignInBody struct {
	Handle string `json:"handle"`
}

// AccountHandler serves the signed-in user's favorites, bookings, plans and
// the partner portal sign-in.
type AccountHandler struct {
	engagementService *services.EngagementService
	bookingService    *services.BookingService
	plansService      *services.PlansService
	partnerService    *services.PartnerService
	log               *zap.SugaredLogger
}

func NewAccountHandler(
	engagementService *services.EngagementService,
	bookingService *services.BookingService,
	plansService *services.PlansService,
	partnerService *services.PartnerService,
	log *zap.SugaredLogger) *AccountHandler {
	return &AccountHandler{
		engagementService: engagementService,
		bookingService:    bookingService,
		plansService:      plansService,
		partnerService:    partnerService,
		log:               log,
	}
}

// writeServiceError maps a service error onto a status code.
func (h *AccountHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotSignedIn):
		writeError(w, http.StatusUnauthorized, "Sign in required", h.log)
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error(), h.log)
	default:
		h.log.Errorf("[AccountHandler] %v", err)
		writeError(w, http.StatusBadGateway, "Upstream request failed", h.log)
	}
}

func decodeBody(r *http.Request, v interface{}) bool {
	return json.NewDecoder(r.Body).Decode(v) == nil
}

// GetFavorites handles GET /v1/favorites
func (h *AccountHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := h.engagementService.Favorites(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.FavoritesResponse{Favorites: favs}, h.log)
}

// ToggleFavorite handles POST /v1/favorites with {"item_type", "item_id"}.
func (h *AccountHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var body favoriteBody
	if !decodeBody(r, &body) || body.ItemID == "" ||
		(body.ItemType != models.ItemVenue && body.ItemType != models.ItemEvent) {
		writeError(w, http.StatusBadRequest, "Invalid body: item_type (venue|event) and item_id are required", h.log)
		return
	}
	favorite, err := h.engagementService.ToggleFavorite(r.Context(), body.ItemType, body.ItemID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"favorite": favorite,
		"count":    h.engagementService.FavoriteCount(r.Context()),
	}, h.log)
}

// Book handles POST /v1/bookings. A verification gate comes back as 200
// with requires_verification set.
func (h *AccountHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if !decodeBody(r, &req) {
		writeError(w, http.StatusBadRequest, "Invalid body", h.log)
		return
	}
	result, err := h.bookingService.Book(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result, h.log)
}

// GetPlans handles GET /v1/plans
func (h *AccountHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.plansService.Plans(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.PlansResponse{Plans: plans}, h.log)
}

// CreatePlan handles POST /v1/plans with {"title": "..."}.
func (h *AccountHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var body planBody
	if !decodeBody(r, &body) {
		writeError(w, http.StatusBadRequest, "Invalid body", h.log)
		return
	}
	plan, err := h.plansService.Create(r.Context(), body.Title)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, plan, h.log)
}

// AddPlanItem handles POST /v1/plans/{planID}/items
func (h *AccountHandler) AddPlanItem(w http.ResponseWriter, r *http.Request) {
	planID := models.ID(mux.Vars(r)[PLAN_ID_PATH_ARG])
	var body planItemBody
	if planID == "" || !decodeBody(r, &body) || body.ItemID == "" {
		writeError(w, http.StatusBadRequest, "Invalid body: item_type and item_id are required", h.log)
		return
	}
	plan, err := h.plansService.AddItem(r.Context(), planID, body.ItemType, body.ItemID, body.Note)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan, h.log)
}

// PartnerSignIn handles POST /v1/partner/session with {"handle": "..."}.
func (h *AccountHandler) PartnerSignIn(w http.ResponseWriter, r *http.Request) {
	var body partnerSignInBody
	if !decodeBody(r, &body) || body.Handle == "" {
		writeError(w, http.StatusBadRequest, "Invalid body: handle is required", h.log)
		return
	}
	portal, err := h.partnerService.SignIn(r.Context(), body.Handle)
	if err != nil {
		h.log.Warnf("[AccountHandler] %v", err)
		writeError(w, http.StatusNotFound, "Unknown partner handle", h.log)
		return
	}
	writeJSON(w, http.StatusOK, portal, h.log)
}

// PartnerSignOut handles DELETE /v1/partner/session
func (h *AccountHandler) PartnerSignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.partnerService.SignOut(r.Context()); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
