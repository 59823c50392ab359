package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"lumina/api/lumina"
	"lumina/dao/redis"
	"lumina/models"
)

// ErrNotSignedIn is returned by operations that need an authenticated user.
var ErrNotSignedIn = errors.New("not signed in")

// ErrInvalidInput wraps rejections made before any request is sent.
var ErrInvalidInput = errors.New("invalid input")

// EngagementService toggles favorites and follows for the signed-in user
// and keeps the cached favorite counter in step.
type EngagementService struct {
	luminaAPI lumina.LuminaAPI
	prefs     *PreferencesStore
	log       *zap.SugaredLogger
}

func NewEngagementService(luminaAPI lumina.LuminaAPI, prefs *PreferencesStore, log *zap.SugaredLogger) *EngagementService {
	return &EngagementService{luminaAPI: luminaAPI, prefs: prefs, log: log}
}

func (es *EngagementService) userID() (string, error) {
	id := es.prefs.UserID()
	if id == "" {
		return "", ErrNotSignedIn
	}
	return id, nil
}

// Favorites lists the user's favorites and refreshes the cached count.
func (es *EngagementService) Favorites(ctx context.Context) ([]models.Favorite, error) {
	user, err := es.userID()
	if err != nil {
		return nil, err
	}
	favs, err := es.luminaAPI.GetFavorites(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("[EngagementService] get favorites: %w", err)
	}
	if err := es.prefs.SetCount(ctx, redis.PrefFavoriteCount, len(favs)); err != nil {
		es.log.Warnf("[EngagementService] Could not cache favorite count: %v", err)
	}
	return favs, nil
}

// IsFavorite reports whether the item is among the user's favorites.
func (es *EngagementService) IsFavorite(ctx context.Context, itemType models.ItemType, itemID models.ID) (bool, error) {
	favs, err := es.Favorites(ctx)
	if err != nil {
		return false, err
	}
	for _, f := range favs {
		if f.ItemType == itemType && f.ItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}

// ToggleFavorite adds the item when it is not a favorite and removes it
// otherwise. It returns the new state.
func (es *EngagementService) ToggleFavorite(ctx context.Context, itemType models.ItemType, itemID models.ID) (bool, error) {
	user, err := es.userID()
	if err != nil {
		return false, err
	}
	current, err := es.IsFavorite(ctx, itemType, itemID)
	if err != nil {
		return false, err
	}

	fav := models.Favorite{UserID: user, ItemType: itemType, ItemID: itemID}
	delta := 1
	if current {
		err = es.luminaAPI.RemoveFavorite(ctx, fav)
		delta = -1
	} else {
		err = es.luminaAPI.AddFavorite(ctx, fav)
	}
	if err != nil {
		return current, fmt.Errorf("[EngagementService] toggle favorite %s/%s: %w", itemType, itemID, err)
	}

	if _, err := es.prefs.AdjustCount(ctx, redis.PrefFavoriteCount, delta); err != nil {
		es.log.Warnf("[EngagementService] Could not update favorite count: %v", err)
	}
	return !current, nil
}

// FavoriteCount returns the cached counter without a network call.
func (es *EngagementService) FavoriteCount(ctx context.Context) int {
	return es.prefs.Count(ctx, redis.PrefFavoriteCount)
}

func (es *EngagementService) Follows(ctx context.Context) ([]models.Follow, error) {
	user, err := es.userID()
	if err != nil {
		return nil, err
	}
	follows, err := es.luminaAPI.GetFollows(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("[EngagementService] get follows: %w", err)
	}
	return follows, nil
}

// ToggleFollow follows or unfollows a venue or promoter and returns the new state.
func (es *EngagementService) ToggleFollow(ctx context.Context, targetType models.ItemType, targetID models.ID) (bool, error) {
	user, err := es.userID()
	if err != nil {
		return false, err
	}
	follows, err := es.Follows(ctx)
	if err != nil {
		return false, err
	}
	current := false
	for _, f := range follows {
		if f.TargetType == targetType && f.TargetID == targetID {
			current = true
			break
		}
	}

	f := models.Follow{UserID: user, TargetType: targetType, TargetID: targetID}
	if current {
		err = es.luminaAPI.Unfollow(ctx, f)
	} else {
		err = es.luminaAPI.Follow(ctx, f)
	}
	if err != nil {
		return current, fmt.Errorf("[EngagementService] toggle follow %s/%s: %w", targetType, targetID, err)
	}
	return !current, nil
}
