package lumina

import (
	"context"

	"lumina/models"
	"lumina/models/event"
	searchmodels "lumina/models/search"
	"lumina/models/venue"
)

// LuminaAPI defines the interface for interacting with the Lumina backend.
// Everything that requires intelligence (ranking, persona inference,
// booking orchestration, chat persistence) happens behind it.
type LuminaAPI interface {
	GetVenues(ctx context.Context, params models.ListParams) ([]venue.Venue, error)
	GetEvents(ctx context.Context, params models.ListParams) ([]event.Event, error)
	Search(ctx context.Context, query string, limit int) (*searchmodels.SearchResponse, error)
	SortForPersona(ctx context.Context, personaID string, itemIDs []string) ([]string, error)

	GetChatMessages(ctx context.Context, roomSlug string) ([]models.ChatMessage, error)
	PostChatMessage(ctx context.Context, msg models.ChatMessage) (*models.ChatMessage, error)

	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error)

	GetFavorites(ctx context.Context, userID string) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, fav models.Favorite) error
	RemoveFavorite(ctx context.Context, fav models.Favorite) error

	GetFollows(ctx context.Context, userID string) ([]models.Follow, error)
	Follow(ctx context.Context, f models.Follow) error
	Unfollow(ctx context.Context, f models.Follow) error

	GetPromoter(ctx context.Context, handle string) (*models.Promoter, error)
	GetPromoterVenues(ctx context.Context, promoterID models.ID) ([]venue.Venue, error)
	SubmitPartnerApplication(ctx context.Context, app models.PartnerApplication) (*models.PartnerApplicationResult, error)
	GetPartnerStats(ctx context.Context, promoterID models.ID) (*models.PartnerStats, error)
	GetLayouts(ctx context.Context, promoterID models.ID) ([]models.SeatingLayout, error)
	SaveLayout(ctx context.Context, promoterID models.ID, layout models.SeatingLayout) (*models.SeatingLayout, error)

	GetPlans(ctx context.Context, userID string) ([]models.Plan, error)
	CreatePlan(ctx context.Context, plan models.Plan) (*models.Plan, error)
	AddPlanItem(ctx context.Context, planID models.ID, item models.PlanItem) (*models.Plan, error)
}
