package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"lumina/db"
	"lumina/models"
)

const PREFERENCES_KEY_FORMAT_V1 = "lumina_pref_v1:%s"

// Preference names.
const (
	PrefSelectedCity     = "selected_city"
	PrefAuthToken        = "auth_token"
	PrefProfile          = "profile"
	PrefMusicPreferences = "music_preferences"
	PrefRecentSearches   = "recent_searches"
	PrefPersona          = "persona"
	PrefPartnerSession   = "partner_session"
	PrefTripCount        = "trip_count"
	PrefFavoriteCount    = "favorite_count"
)

// MaxRecentSearches caps the recent search list.
const MaxRecentSearches = 10

// RedisPreferencesDAO persists device-local preferences in the key-value
// store. Values that fail to decode are logged and replaced by defaults.
type RedisPreferencesDAO struct {
	client db.RedisClient
	log    *zap.SugaredLogger
}

// NewRedisPreferencesDAO initializes a RedisPreferencesDAO with the Redis client.
func NewRedisPreferencesDAO(client db.RedisClient, log *zap.SugaredLogger) *RedisPreferencesDAO {
	return &RedisPreferencesDAO{client: client, log: log}
}

func key(name string) string {
	return fmt.Sprintf(PREFERENCES_KEY_FORMAT_V1, name)
}

func (dao *RedisPreferencesDAO) getString(ctx context.Context, name string) (string, bool, error) {
	val, err := dao.client.Get(ctx, key(name))
	if errors.Is(err, db.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("[RedisPreferencesDAO] failed to get %s: %w", name, err)
	}
	return val, true, nil
}

func (dao *RedisPreferencesDAO) setString(ctx context.Context, name, value string) error {
	if err := dao.client.Set(ctx, key(name), value); err != nil {
		return fmt.Errorf("[RedisPreferencesDAO] failed to set %s: %w", name, err)
	}
	return nil
}

// getJSON decodes the value stored under name into out. A missing key or a
// malformed value leaves out untouched and returns found=false.
func (dao *RedisPreferencesDAO) getJSON(ctx context.Context, name string, out interface{}) (bool, error) {
	raw, ok, err := dao.getString(ctx, name)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		dao.log.Warnf("[RedisPreferencesDAO] Malformed %s value, using default: %v", name, err)
		return false, nil
	}
	return true, nil
}

func (dao *RedisPreferencesDAO) setJSON(ctx context.Context, name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("[RedisPreferencesDAO] failed to marshal %s: %w", name, err)
	}
	return dao.setString(ctx, name, string(data))
}

func (dao *RedisPreferencesDAO) GetSelectedCity(ctx context.Context) (string, error) {
	city, _, err := dao.getString(ctx, PrefSelectedCity)
	return city, err
}

func (dao *RedisPreferencesDAO) SetSelectedCity(ctx context.Context, city string) error {
	return dao.setString(ctx, PrefSelectedCity, strings.TrimSpace(city))
}

func (dao *RedisPreferencesDAO) GetAuthToken(ctx context.Context) (string, error) {
	token, _, err := dao.getString(ctx, PrefAuthToken)
	return token, err
}

func (dao *RedisPreferencesDAO) SetAuthToken(ctx context.Context, token string) error {
	return dao.setString(ctx, PrefAuthToken, token)
}

// ClearSession removes the auth token, cached profile and partner flag.
func (dao *RedisPreferencesDAO) ClearSession(ctx context.Context) error {
	if err := dao.client.Del(ctx, key(PrefAuthToken), key(PrefProfile), key(PrefPartnerSession)); err != nil {
		return fmt.Errorf("[RedisPreferencesDAO] failed to clear session: %w", err)
	}
	return nil
}

// GetProfile returns the cached profile JSON object, or an empty map.
func (dao *RedisPreferencesDAO) GetProfile(ctx context.Context) (map[string]interface{}, error) {
	profile := map[string]interface{}{}
	if ok, err := dao.getJSON(ctx, PrefProfile, &profile); err != nil || !ok {
		return map[string]interface{}{}, err
	}
	return profile, nil
}

func (dao *RedisPreferencesDAO) SetProfile(ctx context.Context, profile map[string]interface{}) error {
	return dao.setJSON(ctx, PrefProfile, profile)
}

func (dao *RedisPreferencesDAO) GetMusicPreferences(ctx context.Context) ([]string, error) {
	var prefs []string
	if ok, err := dao.getJSON(ctx, PrefMusicPreferences, &prefs); err != nil || !ok {
		return []string{}, err
	}
	return prefs, nil
}

func (dao *RedisPreferencesDAO) SetMusicPreferences(ctx context.Context, prefs []string) error {
	if prefs == nil {
		prefs = []string{}
	}
	return dao.setJSON(ctx, PrefMusicPreferences, prefs)
}

func (dao *RedisPreferencesDAO) GetRecentSearches(ctx context.Context) ([]string, error) {
	var terms []string
	if ok, err := dao.getJSON(ctx, PrefRecentSearches, &terms); err != nil || !ok {
		return []string{}, err
	}
	return terms, nil
}

// AddRecentSearch moves term to the front of the recent list, dropping any
// case-insensitive duplicate and trimming to MaxRecentSearches.
func (dao *RedisPreferencesDAO) AddRecentSearch(ctx context.Context, term string) ([]string, error) {
	term = strings.TrimSpace(term)
	current, err := dao.GetRecentSearches(ctx)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return current, nil
	}

	updated := []string{term}
	for _, t := range current {
		if strings.EqualFold(t, term) {
			continue
		}
		if len(updated) == MaxRecentSearches {
			break
		}
		updated = append(updated, t)
	}
	if err := dao.setJSON(ctx, PrefRecentSearches, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (dao *RedisPreferencesDAO) ClearRecentSearches(ctx context.Context) error {
	return dao.client.Del(ctx, key(PrefRecentSearches))
}

// GetPersona returns the stored persona or nil when none was saved.
func (dao *RedisPreferencesDAO) GetPersona(ctx context.Context) (*models.Persona, error) {
	var p models.Persona
	ok, err := dao.getJSON(ctx, PrefPersona, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (dao *RedisPreferencesDAO) SetPersona(ctx context.Context, p *models.Persona) error {
	if p == nil {
		return dao.client.Del(ctx, key(PrefPersona))
	}
	return dao.setJSON(ctx, PrefPersona, p)
}

func (dao *RedisPreferencesDAO) GetPartnerSession(ctx context.Context) (bool, error) {
	raw, ok, err := dao.getString(ctx, PrefPartnerSession)
	if err != nil || !ok {
		return false, err
	}
	active, perr := strconv.ParseBool(raw)
	if perr != nil {
		dao.log.Warnf("[RedisPreferencesDAO] Malformed %s value %q, using default", PrefPartnerSession, raw)
		return false, nil
	}
	return active, nil
}

func (dao *RedisPreferencesDAO) SetPartnerSession(ctx context.Context, active bool) error {
	return dao.setString(ctx, PrefPartnerSession, strconv.FormatBool(active))
}

// GetCount reads one of the cached counters (PrefTripCount, PrefFavoriteCount).
func (dao *RedisPreferencesDAO) GetCount(ctx context.Context, name string) (int, error) {
	raw, ok, err := dao.getString(ctx, name)
	if err != nil || !ok {
		return 0, err
	}
	n, perr := strconv.Atoi(raw)
	if perr != nil {
		dao.log.Warnf("[RedisPreferencesDAO] Malformed %s value %q, using default", name, raw)
		return 0, nil
	}
	return n, nil
}

func (dao *RedisPreferencesDAO) SetCount(ctx context.Context, name string, n int) error {
	if n < 0 {
		n = 0
	}
	return dao.setString(ctx, name, strconv.Itoa(n))
}

// ListKeys returns the names of every stored preference.
func (dao *RedisPreferencesDAO) ListKeys(ctx context.Context) ([]string, error) {
	keys, err := dao.client.Keys(ctx, key("*"))
	if err != nil {
		return nil, fmt.Errorf("[RedisPreferencesDAO] failed to list keys: %w", err)
	}
	prefix := key("")
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, strings.TrimPrefix(k, prefix))
	}
	return names, nil
}
