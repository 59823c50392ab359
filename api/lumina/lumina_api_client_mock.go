package lumina

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"lumina/config"
	"lumina/models"
	"lumina/models/event"
	searchmodels "lumina/models/search"
	"lumina/models/venue"
	"lumina/util"
)

var _ LuminaAPI = (*LuminaApiClientMock)(nil)

// LuminaApiClientMock serves reads from JSON fixtures under a resources
// directory and keeps writes in memory.
type LuminaApiClientMock struct {
	resourcesDir string

	// RequireVerification makes CreateBooking answer with the
	// identity-verification gate.
	RequireVerification bool

	mu        sync.Mutex
	favorites []models.Favorite
	follows   []models.Follow
	messages  map[string][]models.ChatMessage
	plans     map[models.ID]*models.Plan
	layouts   map[models.ID][]models.SeatingLayout
}

// NewLuminaApiClientMock creates a new instance of LuminaApiClientMock
func NewLuminaApiClientMock(resourcesDir string) *LuminaApiClientMock {
	return &LuminaApiClientMock{
		resourcesDir: resourcesDir,
		messages:     make(map[string][]models.ChatMessage),
		plans:        make(map[models.ID]*models.Plan),
		layouts:      make(map[models.ID][]models.SeatingLayout),
	}
}

func (c *LuminaApiClientMock) path(resource string) string {
	return filepath.Join(c.resourcesDir, resource)
}

func (c *LuminaApiClientMock) GetVenues(ctx context.Context, params models.ListParams) ([]venue.Venue, error) {
	resp, err := util.ReadVenuesResponseFromJSON(c.path(config.VENUES_RESPONSE_RESOURCE))
	if err != nil {
		return nil, err
	}
	var out []venue.Venue
	for _, v := range resp.Venues {
		if params.City != "" && v.City != "" && !strings.EqualFold(v.City, params.City) {
			continue
		}
		out = append(out, v)
		if params.Limit > 0 && len(out) == params.Limit {
			break
		}
	}
	return out, nil
}

func (c *LuminaApiClientMock) GetEvents(ctx context.Context, params models.ListParams) ([]event.Event, error) {
	resp, err := util.ReadEventsResponseFromJSON(c.path(config.EVENTS_RESPONSE_RESOURCE))
	if err != nil {
		return nil, err
	}
	var out []event.Event
	for _, e := range resp.Events {
		if params.City != "" && e.City != "" && !strings.EqualFold(e.City, params.City) {
			continue
		}
		out = append(out, e)
		if params.Limit > 0 && len(out) == params.Limit {
			break
		}
	}
	return out, nil
}

func (c *LuminaApiClientMock) Search(ctx context.Context, query string, limit int) (*searchmodels.SearchResponse, error) {
	resp, err := util.ReadSearchResponseFromJSON(c.path(config.SEARCH_RESPONSE_RESOURCE))
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(resp.Venues) > limit {
		resp.Venues = resp.Venues[:limit]
	}
	return resp, nil
}

// SortForPersona returns the ids unchanged; persona ranking is server-side.
func (c *LuminaApiClientMock) SortForPersona(ctx context.Context, personaID string, itemIDs []string) ([]string, error) {
	return append([]string(nil), itemIDs...), nil
}

func (c *LuminaApiClientMock) GetChatMessages(ctx context.Context, roomSlug string) ([]models.ChatMessage, error) {
	resp, err := util.ReadChatMessagesFromJSON(c.path(config.CHAT_MESSAGES_RESOURCE))
	if err != nil {
		return nil, err
	}
	var out []models.ChatMessage
	for _, m := range resp.Messages {
		if m.RoomSlug == roomSlug {
			out = append(out, m)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return append(out, c.messages[roomSlug]...), nil
}

func (c *LuminaApiClientMock) PostChatMessage(ctx context.Context, msg models.ChatMessage) (*models.ChatMessage, error) {
	if !msg.MessageType.Valid() {
		return nil, fmt.Errorf("invalid message_type %q", msg.MessageType)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	msg.ID = models.ID(uuid.NewString())
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	c.messages[msg.RoomSlug] = append(c.messages[msg.RoomSlug], msg)
	return &msg, nil
}

func (c *LuminaApiClientMock) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	if c.RequireVerification {
		return &models.BookingResponse{
			RequiresVerification: true,
			Message:              "Identity verification required before booking",
		}, nil
	}
	return &models.BookingResponse{
		BookingID: models.ID(uuid.NewString()),
		Status:    "pending",
	}, nil
}

func (c *LuminaApiClientMock) GetFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []models.Favorite
	for _, f := range c.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (c *LuminaApiClientMock) AddFavorite(ctx context.Context, fav models.Favorite) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range c.favorites {
		if f.UserID == fav.UserID && f.ItemType == fav.ItemType && f.ItemID == fav.ItemID {
			return nil
		}
	}
	c.favorites = append(c.favorites, fav)
	return nil
}

func (c *LuminaApiClientMock) RemoveFavorite(ctx context.Context, fav models.Favorite) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.favorites[:0]
	for _, f := range c.favorites {
		if f.UserID == fav.UserID && f.ItemType == fav.ItemType && f.ItemID == fav.ItemID {
			continue
		}
		kept = append(kept, f)
	}
	c.favorites = kept
	return nil
}

func (c *LuminaApiClientMock) GetFollows(ctx context.Context, userID string) ([]models.Follow, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []models.Follow
	for _, f := range c.follows {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (c *LuminaApiClientMock) Follow(ctx context.Context, f models.Follow) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.follows {
		if existing.UserID == f.UserID && existing.TargetType == f.TargetType && existing.TargetID == f.TargetID {
			return nil
		}
	}
	c.follows = append(c.follows, f)
	return nil
}

func (c *LuminaApiClientMock) Unfollow(ctx context.Context, f models.Follow) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.follows[:0]
	for _, existing := range c.follows {
		if existing.UserID == f.UserID && existing.TargetType == f.TargetType && existing.TargetID == f.TargetID {
			continue
		}
		kept = append(kept, existing)
	}
	c.follows = kept
	return nil
}

func (c *LuminaApiClientMock) GetPromoter(ctx context.Context, handle string) (*models.Promoter, error) {
	p, err := util.ReadPromoterFromJSON(c.path(config.PROMOTER_RESOURCE))
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(p.Handle, handle) {
		return nil, fmt.Errorf("promoter %q not found", handle)
	}
	return p, nil
}

func (c *LuminaApiClientMock) GetPromoterVenues(ctx context.Context, promoterID models.ID) ([]venue.Venue, error) {
	p, err := util.ReadPromoterFromJSON(c.path(config.PROMOTER_RESOURCE))
	if err != nil {
		return nil, err
	}
	if p.ID != promoterID {
		return []venue.Venue{}, nil
	}
	all, err := c.GetVenues(ctx, models.ListParams{})
	if err != nil {
		return nil, err
	}
	owned := make(map[models.ID]struct{}, len(p.VenueIDs))
	for _, id := range p.VenueIDs {
		owned[id] = struct{}{}
	}
	var out []venue.Venue
	for _, v := range all {
		if _, ok := owned[v.ID]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (c *LuminaApiClientMock) SubmitPartnerApplication(ctx context.Context, app models.PartnerApplication) (*models.PartnerApplicationResult, error) {
	return &models.PartnerApplicationResult{ApplicationID: models.ID(uuid.NewString()), Status: "received"}, nil
}

func (c *LuminaApiClientMock) GetPartnerStats(ctx context.Context, promoterID models.ID) (*models.PartnerStats, error) {
	p, err := util.ReadPromoterFromJSON(c.path(config.PROMOTER_RESOURCE))
	if err != nil {
		return nil, err
	}
	return &models.PartnerStats{
		PromoterID:     promoterID,
		Followers:      p.FollowerCount,
		UpcomingEvents: len(p.EventIDs),
	}, nil
}

func (c *LuminaApiClientMock) GetLayouts(ctx context.Context, promoterID models.ID) ([]models.SeatingLayout, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.SeatingLayout{}, c.layouts[promoterID]...), nil
}

func (c *LuminaApiClientMock) SaveLayout(ctx context.Context, promoterID models.ID, layout models.SeatingLayout) (*models.SeatingLayout, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if layout.ID == "" {
		layout.ID = models.ID(uuid.NewString())
	}
	list := c.layouts[promoterID]
	for i := range list {
		if list[i].ID == layout.ID {
			list[i] = layout
			return &layout, nil
		}
	}
	c.layouts[promoterID] = append(list, layout)
	return &layout, nil
}

func (c *LuminaApiClientMock) GetPlans(ctx context.Context, userID string) ([]models.Plan, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []models.Plan
	for _, p := range c.plans {
		if p.UserID == userID {
			cp := *p
			cp.Items = append([]models.PlanItem(nil), p.Items...)
			out = append(out, cp)
		}
	}
	return out, nil
}

func (c *LuminaApiClientMock) CreatePlan(ctx context.Context, plan models.Plan) (*models.Plan, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	plan.ID = models.ID(uuid.NewString())
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}
	stored := plan
	c.plans[plan.ID] = &stored
	return &plan, nil
}

func (c *LuminaApiClientMock) AddPlanItem(ctx context.Context, planID models.ID, item models.PlanItem) (*models.Plan, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.plans[planID]
	if !ok {
		return nil, fmt.Errorf("plan %s not found", planID)
	}
	p.Items = append(p.Items, item)
	cp := *p
	cp.Items = append([]models.PlanItem(nil), p.Items...)
	return &cp, nil
}
