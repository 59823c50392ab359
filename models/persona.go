package models

import "time"

// Persona is the small device-local profile captured during onboarding.
type Persona struct {
	PersonaID          string    `json:"persona_id"`
	GenderIdentity     string    `json:"gender_identity,omitempty"`
	RelationshipStatus string    `json:"relationship_status,omitempty"`
	DatingPreference   string    `json:"dating_preference,omitempty"`
	OnboardedAt        time.Time `json:"onboarded_at"`

	// MusicPreferences is stored under its own key and attached when the
	// persona is handed to a weighting function.
	MusicPreferences []string `json:"music_preferences,omitempty"`
}

const (
	RelationshipSingle   = "single"
	RelationshipDating   = "dating"
	RelationshipCoupled  = "in_relationship"
	RelationshipMarried  = "married"
	RelationshipNotShare = "prefer_not_to_say"
)

// IsPartnered reports whether the persona should be shown couple-oriented picks.
func (p *Persona) IsPartnered() bool {
	if p == nil {
		return false
	}
	switch p.RelationshipStatus {
	case RelationshipDating, RelationshipCoupled, RelationshipMarried:
		return true
	}
	return false
}
