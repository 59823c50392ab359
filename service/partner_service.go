package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"lumina/api/lumina"
	"lumina/models"
	"lumina/models/venue"
)

// PartnerPortal is the promoter dashboard landing data.
type PartnerPortal struct {
	Promoter *models.Promoter     `json:"promoter"`
	Venues   []venue.Venue        `json:"venues"`
	Stats    *models.PartnerStats `json:"stats,omitempty"`
}

// PartnerService backs the promoter and venue-operator portal.
type PartnerService struct {
	luminaAPI lumina.LuminaAPI
	prefs     *PreferencesStore
	validate  *validator.Validate
	log       *zap.SugaredLogger
}

func NewPartnerService(luminaAPI lumina.LuminaAPI, prefs *PreferencesStore, log *zap.SugaredLogger) *PartnerService {
	return &PartnerService{
		luminaAPI: luminaAPI,
		prefs:     prefs,
		validate:  validator.New(),
		log:       log,
	}
}

// SignIn loads the portal for handle and marks the partner session active.
// Stats are best effort; a failure leaves them nil.
func (ps *PartnerService) SignIn(ctx context.Context, handle string) (*PartnerPortal, error) {
	promoter, err := ps.luminaAPI.GetPromoter(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("[PartnerService] get promoter %q: %w", handle, err)
	}
	venues, err := ps.luminaAPI.GetPromoterVenues(ctx, promoter.ID)
	if err != nil {
		ps.log.Warnf("[PartnerService] GetPromoterVenues failed for %s: %v", promoter.ID, err)
		venues = []venue.Venue{}
	}
	stats, err := ps.luminaAPI.GetPartnerStats(ctx, promoter.ID)
	if err != nil {
		ps.log.Warnf("[PartnerService] GetPartnerStats failed for %s: %v", promoter.ID, err)
		stats = nil
	}

	if err := ps.prefs.SetPartnerSession(ctx, true); err != nil {
		ps.log.Warnf("[PartnerService] Could not persist partner session: %v", err)
	}
	return &PartnerPortal{Promoter: promoter, Venues: venues, Stats: stats}, nil
}

// SignOut ends the partner session without touching the user session.
func (ps *PartnerService) SignOut(ctx context.Context) error {
	return ps.prefs.SetPartnerSession(ctx, false)
}

// Apply validates and submits a partner application.
func (ps *PartnerService) Apply(ctx context.Context, app models.PartnerApplication) (*models.PartnerApplicationResult, error) {
	if err := ps.validate.Struct(app); err != nil {
		return nil, fmt.Errorf("[PartnerService] invalid application: %w", err)
	}
	res, err := ps.luminaAPI.SubmitPartnerApplication(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("[PartnerService] submit application: %w", err)
	}
	return res, nil
}

func (ps *PartnerService) Layouts(ctx context.Context, promoterID models.ID) ([]models.SeatingLayout, error) {
	layouts, err := ps.luminaAPI.GetLayouts(ctx, promoterID)
	if err != nil {
		return nil, fmt.Errorf("[PartnerService] get layouts for %s: %w", promoterID, err)
	}
	return layouts, nil
}

// SaveLayout validates a floor plan and stores it. Table ids must be unique
// within the layout.
func (ps *PartnerService) SaveLayout(ctx context.Context, promoterID models.ID, layout models.SeatingLayout) (*models.SeatingLayout, error) {
	if err := ps.validate.Struct(layout); err != nil {
		return nil, fmt.Errorf("[PartnerService] invalid layout: %w", err)
	}
	seen := make(map[string]struct{}, len(layout.Tables))
	for _, t := range layout.Tables {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("[PartnerService] invalid layout: duplicate table id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
	}

	saved, err := ps.luminaAPI.SaveLayout(ctx, promoterID, layout)
	if err != nil {
		return nil, fmt.Errorf("[PartnerService] save layout for %s: %w", promoterID, err)
	}
	return saved, nil
}
