package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"lumina/api/lumina"
	"lumina/models"
)

// PlansService manages the signed-in user's itineraries. Items can only be
// appended from the client.
type PlansService struct {
	luminaAPI lumina.LuminaAPI
	prefs     *PreferencesStore
	log       *zap.SugaredLogger
}

func NewPlansService(luminaAPI lumina.LuminaAPI, prefs *PreferencesStore, log *zap.SugaredLogger) *PlansService {
	return &PlansService{luminaAPI: luminaAPI, prefs: prefs, log: log}
}

func (ps *PlansService) Plans(ctx context.Context) ([]models.Plan, error) {
	user := ps.prefs.UserID()
	if user == "" {
		return nil, ErrNotSignedIn
	}
	plans, err := ps.luminaAPI.GetPlans(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("[PlansService] get plans: %w", err)
	}
	return plans, nil
}

func (ps *PlansService) Create(ctx context.Context, title string) (*models.Plan, error) {
	user := ps.prefs.UserID()
	if user == "" {
		return nil, ErrNotSignedIn
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("[PlansService] plan title is required: %w", ErrInvalidInput)
	}
	plan, err := ps.luminaAPI.CreatePlan(ctx, models.Plan{UserID: user, Title: title, Items: []models.PlanItem{}})
	if err != nil {
		return nil, fmt.Errorf("[PlansService] create plan: %w", err)
	}
	return plan, nil
}

// AddItem appends a venue or event to the plan.
func (ps *PlansService) AddItem(ctx context.Context, planID models.ID, itemType models.ItemType, itemID models.ID, note string) (*models.Plan, error) {
	if itemType != models.ItemVenue && itemType != models.ItemEvent {
		return nil, fmt.Errorf("[PlansService] plans hold venues and events, got %q: %w", itemType, ErrInvalidInput)
	}
	plan, err := ps.luminaAPI.AddPlanItem(ctx, planID, models.PlanItem{ItemType: itemType, ItemID: itemID, Note: note})
	if err != nil {
		return nil, fmt.Errorf("[PlansService] add item to plan %s: %w", planID, err)
	}
	return plan, nil
}
