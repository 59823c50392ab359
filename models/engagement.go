package models

import "time"

// ItemType identifies what a favorite or follow points at.
type ItemType string

const (
	ItemVenue    ItemType = "venue"
	ItemEvent    ItemType = "event"
	ItemPromoter ItemType = "promoter"
)

// Favorite is a saved venue or event.
type Favorite struct {
	UserID    string    `json:"userId"`
	ItemType  ItemType  `json:"itemType"`
	ItemID    ID        `json:"itemId"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// FavoritesResponse wraps GET /api/favorites.
type FavoritesResponse struct {
	Favorites []Favorite `json:"favorites"`
}

// Follow is a followed venue or promoter.
type Follow struct {
	UserID     string    `json:"userId"`
	TargetType ItemType  `json:"targetType"`
	TargetID   ID        `json:"targetId"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// FollowsResponse wraps GET /api/follows.
type FollowsResponse struct {
	Follows []Follow `json:"follows"`
}

// Plan is a user-curated ordered list of venues and events.
type Plan struct {
	ID        ID         `json:"id"`
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"`
	Items     []PlanItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
}

// PlanItem references a venue or event inside a plan.
type PlanItem struct {
	ItemType ItemType `json:"item_type"`
	ItemID   ID       `json:"item_id"`
	Note     string   `json:"note,omitempty"`
}

// PlansResponse wraps GET /api/plans.
type PlansResponse struct {
	Plans []Plan `json:"plans"`
}
