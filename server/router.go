package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// FeedRoutes serves the feed, explore and health endpoints.
type FeedRoutes interface {
	GetHomeFeed(w http.ResponseWriter, r *http.Request)
	GetFeedReport(w http.ResponseWriter, r *http.Request)
	GetExplore(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type SearchRoutes interface {
	Search(w http.ResponseWriter, r *http.Request)
}

type PreferencesRoutes interface {
	GetCity(w http.ResponseWriter, r *http.Request)
	PutCity(w http.ResponseWriter, r *http.Request)
}

// AccountRoutes serves the signed-in user's favorites, bookings, plans and
// the partner session.
type AccountRoutes interface {
	GetFavorites(w http.ResponseWriter, r *http.Request)
	ToggleFavorite(w http.ResponseWriter, r *http.Request)
	Book(w http.ResponseWriter, r *http.Request)
	GetPlans(w http.ResponseWriter, r *http.Request)
	CreatePlan(w http.ResponseWriter, r *http.Request)
	AddPlanItem(w http.ResponseWriter, r *http.Request)
	PartnerSignIn(w http.ResponseWriter, r *http.Request)
	PartnerSignOut(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	feedHandler        FeedRoutes
	searchHandler      SearchRoutes
	preferencesHandler PreferencesRoutes
	accountHandler     AccountRoutes
	router             *mux.Router
	allowedOrigins     []string
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	feedHandler FeedRoutes,
	searchHandler SearchRoutes,
	preferencesHandler PreferencesRoutes,
	accountHandler AccountRoutes,
	router *mux.Router,
	allowedOrigins []string) *Router {
	return &Router{
		feedHandler:        feedHandler,
		searchHandler:      searchHandler,
		preferencesHandler: preferencesHandler,
		accountHandler:     accountHandler,
		router:             router,
		allowedOrigins:     allowedOrigins,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?city={city(string, optional)}
	r.router.HandleFunc("/v1/feed", r.feedHandler.GetHomeFeed).Methods("GET")
	r.router.HandleFunc("/v1/feed/report", r.feedHandler.GetFeedReport).Methods("GET")
	r.router.HandleFunc("/v1/explore", r.feedHandler.GetExplore).Methods("GET")

	// expects ?q={query(string)}&limit={limit(int, optional)}
	r.router.HandleFunc("/v1/search", r.searchHandler.Search).Methods("GET")

	r.router.HandleFunc("/v1/preferences/city", r.preferencesHandler.GetCity).Methods("GET")
	r.router.HandleFunc("/v1/preferences/city", r.preferencesHandler.PutCity).Methods("PUT")

	r.router.HandleFunc("/v1/favorites", r.accountHandler.GetFavorites).Methods("GET")
	r.router.HandleFunc("/v1/favorites", r.accountHandler.ToggleFavorite).Methods("POST")
	r.router.HandleFunc("/v1/bookings", r.accountHandler.Book).Methods("POST")
	r.router.HandleFunc("/v1/plans", r.accountHandler.GetPlans).Methods("GET")
	r.router.HandleFunc("/v1/plans", r.accountHandler.CreatePlan).Methods("POST")
	r.router.HandleFunc("/v1/plans/{planID}/items", r.accountHandler.AddPlanItem).Methods("POST")
	r.router.HandleFunc("/v1/partner/session", r.accountHandler.PartnerSignIn).Methods("POST")
	r.router.HandleFunc("/v1/partner/session", r.accountHandler.PartnerSignOut).Methods("DELETE")

	r.router.HandleFunc("/ping", r.feedHandler.Ping).Methods("GET")
}

// Handler returns the routes wrapped with CORS for the UI shell's origins.
func (r *Router) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: r.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(r.router)
}
