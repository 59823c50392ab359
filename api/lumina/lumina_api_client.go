package lumina

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"lumina/api"
	"lumina/models"
	"lumina/models/event"
	searchmodels "lumina/models/search"
	"lumina/models/venue"
)

var _ LuminaAPI = (*LuminaApiClient)(nil)

// LuminaApiClient embeds the common HTTPClient
type LuminaApiClient struct {
	*api.HTTPClient
}

// NewLuminaApiClient creates a new instance of LuminaApiClient
func NewLuminaApiClient(httpClient *api.HTTPClient) *LuminaApiClient {
	return &LuminaApiClient{
		HTTPClient: httpClient,
	}
}

func (c *LuminaApiClient) GetVenues(ctx context.Context, params models.ListParams) ([]venue.Venue, error) {
	var response venue.VenuesResponse
	if err := c.Request(ctx, http.MethodGet, "/api/venues", params.ToValues(), nil, &response); err != nil {
		return nil, err
	}
	return response.Venues, nil
}

func (c *LuminaApiClient) GetEvents(ctx context.Context, params models.ListParams) ([]event.Event, error) {
	var response event.EventsResponse
	if err := c.Request(ctx, http.MethodGet, "/api/events", params.ToValues(), nil, &response); err != nil {
		return nil, err
	}
	return response.Events, nil
}

func (c *LuminaApiClient) Search(ctx context.Context, query string, limit int) (*searchmodels.SearchResponse, error) {
	q := url.Values{"q": {query}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var response searchmodels.SearchResponse
	if err := c.Request(ctx, http.MethodGet, "/api/search", q, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// SortForPersona asks the persona service to order item ids for a persona.
func (c *LuminaApiClient) SortForPersona(ctx context.Context, personaID string, itemIDs []string) ([]string, error) {
	body := map[string]interface{}{"persona_id": personaID, "item_ids": itemIDs}
	var response struct {
		ItemIDs []string `json:"item_ids"`
	}
	if err := c.Request(ctx, http.MethodPost, "/api/persona/sort", nil, body, &response); err != nil {
		return nil, err
	}
	return response.ItemIDs, nil
}

func (c *LuminaApiClient) GetChatMessages(ctx context.Context, roomSlug string) ([]models.ChatMessage, error) {
	var response models.ChatMessagesResponse
	q := url.Values{"room_slug": {roomSlug}}
	if err := c.Request(ctx, http.MethodGet, "/api/chat/messages", q, nil, &response); err != nil {
		return nil, err
	}
	return response.Messages, nil
}

func (c *LuminaApiClient) PostChatMessage(ctx context.Context, msg models.ChatMessage) (*models.ChatMessage, error) {
	var response struct {
		Message models.ChatMessage `json:"message"`
	}
	if err := c.Request(ctx, http.MethodPost, "/api/chat/messages", nil, msg, &response); err != nil {
		return nil, err
	}
	return &response.Message, nil
}

// CreateBooking posts a booking request. A verification gate is reported
// through BookingResponse.RequiresVerification, whether the backend signals
// it with a 2xx body or with an error status carrying the same body.
func (c *LuminaApiClient) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	var response models.BookingResponse
	err := c.Request(ctx, http.MethodPost, "/api/bookings", nil, req, &response)
	if err == nil {
		return &response, nil
	}

	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		var gated models.BookingResponse
		if json.Unmarshal(statusErr.Body, &gated) == nil && gated.RequiresVerification {
			return &gated, nil
		}
	}
	return nil, err
}

func (c *LuminaApiClient) GetFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	var response models.FavoritesResponse
	if err := c.Request(ctx, http.MethodGet, "/api/favorites", url.Values{"userId": {userID}}, nil, &response); err != nil {
		return nil, err
	}
	return response.Favorites, nil
}

func (c *LuminaApiClient) AddFavorite(ctx context.Context, fav models.Favorite) error {
	return c.Request(ctx, http.MethodPost, "/api/favorites", nil, fav, nil)
}

func (c *LuminaApiClient) RemoveFavorite(ctx context.Context, fav models.Favorite) error {
	q := url.Values{
		"userId":   {fav.UserID},
		"itemType": {string(fav.ItemType)},
		"itemId":   {string(fav.ItemID)},
	}
	return c.Request(ctx, http.MethodDelete, "/api/favorites", q, nil, nil)
}

func (c *LuminaApiClient) GetFollows(ctx context.Context, userID string) ([]models.Follow, error) {
	var response models.FollowsResponse
	if err := c.Request(ctx, http.MethodGet, "/api/follows", url.Values{"userId": {userID}}, nil, &response); err != nil {
		return nil, err
	}
	return response.Follows, nil
}

func (c *LuminaApiClient) Follow(ctx context.Context, f models.Follow) error {
	return c.Request(ctx, http.MethodPost, "/api/follows", nil, f, nil)
}

func (c *LuminaApiClient) Unfollow(ctx context.Context, f models.Follow) error {
	q := url.Values{
		"userId":     {f.UserID},
		"targetType": {string(f.TargetType)},
		"targetId":   {string(f.TargetID)},
	}
	return c.Request(ctx, http.MethodDelete, "/api/follows", q, nil, nil)
}

func (c *LuminaApiClient) GetPromoter(ctx context.Context, handle string) (*models.Promoter, error) {
	var response struct {
		Promoter models.Promoter `json:"promoter"`
	}
	if err := c.Request(ctx, http.MethodGet, "/api/promoters/"+url.PathEscape(handle), nil, nil, &response); err != nil {
		return nil, err
	}
	return &response.Promoter, nil
}

func (c *LuminaApiClient) GetPromoterVenues(ctx context.Context, promoterID models.ID) ([]venue.Venue, error) {
	var response venue.VenuesResponse
	q := url.Values{"promoter_id": {string(promoterID)}}
	if err := c.Request(ctx, http.MethodGet, "/api/promoters/venues", q, nil, &response); err != nil {
		return nil, err
	}
	return response.Venues, nil
}

func (c *LuminaApiClient) SubmitPartnerApplication(ctx context.Context, app models.PartnerApplication) (*models.PartnerApplicationResult, error) {
	var response models.PartnerApplicationResult
	if err := c.Request(ctx, http.MethodPost, "/api/partners/applications", nil, app, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *LuminaApiClient) GetPartnerStats(ctx context.Context, promoterID models.ID) (*models.PartnerStats, error) {
	var response models.PartnerStats
	if err := c.Request(ctx, http.MethodGet, "/api/promoters/"+url.PathEscape(string(promoterID))+"/stats", nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *LuminaApiClient) GetLayouts(ctx context.Context, promoterID models.ID) ([]models.SeatingLayout, error) {
	var response struct {
		Layouts []models.SeatingLayout `json:"layouts"`
	}
	if err := c.Request(ctx, http.MethodGet, "/api/promoters/"+url.PathEscape(string(promoterID))+"/layouts", nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Layouts, nil
}

func (c *LuminaApiClient) SaveLayout(ctx context.Context, promoterID models.ID, layout models.SeatingLayout) (*models.SeatingLayout, error) {
	var response struct {
		Layout models.SeatingLayout `json:"layout"`
	}
	if err := c.Request(ctx, http.MethodPost, "/api/promoters/"+url.PathEscape(string(promoterID))+"/layouts", nil, layout, &response); err != nil {
		return nil, err
	}
	return &response.Layout, nil
}

func (c *LuminaApiClient) GetPlans(ctx context.Context, userID string) ([]models.Plan, error) {
	var response models.PlansResponse
	if err := c.Request(ctx, http.MethodGet, "/api/plans", url.Values{"userId": {userID}}, nil, &response); err != nil {
		return nil, err
	}
	return response.Plans, nil
}

func (c *LuminaApiClient) CreatePlan(ctx context.Context, plan models.Plan) (*models.Plan, error) {
	var response struct {
		Plan models.Plan `json:"plan"`
	}
	if err := c.Request(ctx, http.MethodPost, "/api/plans", nil, plan, &response); err != nil {
		return nil, err
	}
	return &response.Plan, nil
}

func (c *LuminaApiClient) AddPlanItem(ctx context.Context, planID models.ID, item models.PlanItem) (*models.Plan, error) {
	var response struct {
		Plan models.Plan `json:"plan"`
	}
	if err := c.Request(ctx, http.MethodPost, "/api/plans/"+url.PathEscape(string(planID))+"/items", nil, item, &response); err != nil {
		return nil, err
	}
	return &response.Plan, nil
}
