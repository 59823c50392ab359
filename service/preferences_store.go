package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"lumina/dao/redis"
	"lumina/models"
)

// Preference change keys passed to subscribers.
const (
	ChangeAuthToken        = redis.PrefAuthToken
	ChangeSelectedCity     = redis.PrefSelectedCity
	ChangePersona          = redis.PrefPersona
	ChangeMusicPreferences = redis.PrefMusicPreferences
	ChangeRecentSearches   = redis.PrefRecentSearches
	ChangePartnerSession   = redis.PrefPartnerSession
)

// Preferences is an in-memory copy of the persisted preferences.
type Preferences struct {
	AuthToken        string          `json:"-"`
	SelectedCity     string          `json:"selected_city"`
	Persona          *models.Persona `json:"persona,omitempty"`
	MusicPreferences []string        `json:"music_preferences"`
	RecentSearches   []string        `json:"recent_searches"`
	PartnerSession   bool            `json:"partner_session"`
}

func (p Preferences) clone() Preferences {
	out := p
	out.MusicPreferences = append([]string{}, p.MusicPreferences...)
	out.RecentSearches = append([]string{}, p.RecentSearches...)
	if p.Persona != nil {
		persona := *p.Persona
		persona.MusicPreferences = append([]string(nil), p.Persona.MusicPreferences...)
		out.Persona = &persona
	}
	return out
}

// Change is delivered to subscribers after a write has been persisted.
type Change struct {
	Key         string
	Preferences Preferences
}

type subscriber struct {
	id int
	fn func(Change)
}

// PreferencesStore is the process-wide owner of device-local preferences.
// Reads are served from memory; writes go to the DAO first and are
// serialised so that concurrent setters cannot interleave.
//
// Subscribers run on the writer's goroutine and must not call setters.
type PreferencesStore struct {
	dao         *redis.RedisPreferencesDAO
	defaultCity string
	log         *zap.SugaredLogger
	now         func() time.Time

	writeMu sync.Mutex
	mu      sync.RWMutex
	state   Preferences
	subs    []subscriber
	nextSub int
}

// NewPreferencesStore creates a store. Call Init before reading.
func NewPreferencesStore(dao *redis.RedisPreferencesDAO, defaultCity string, log *zap.SugaredLogger) *PreferencesStore {
	return &PreferencesStore{
		dao:         dao,
		defaultCity: defaultCity,
		log:         log,
		now:         time.Now,
		state: Preferences{
			SelectedCity:     defaultCity,
			MusicPreferences: []string{},
			RecentSearches:   []string{},
		},
	}
}

// Init hydrates the store in a fixed order: auth token, selected city,
// persona, music preferences, recent searches, partner session. A value that
// cannot be read keeps its default; the read errors are returned joined.
func (s *PreferencesStore) Init(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var errs []error
	next := s.snapshot()

	if token, err := s.dao.GetAuthToken(ctx); err != nil {
		errs = append(errs, err)
	} else {
		next.AuthToken = token
	}
	if city, err := s.dao.GetSelectedCity(ctx); err != nil {
		errs = append(errs, err)
	} else if city != "" {
		next.SelectedCity = city
	}
	if persona, err := s.dao.GetPersona(ctx); err != nil {
		errs = append(errs, err)
	} else {
		next.Persona = persona
	}
	if prefs, err := s.dao.GetMusicPreferences(ctx); err != nil {
		errs = append(errs, err)
	} else {
		next.MusicPreferences = prefs
	}
	if recent, err := s.dao.GetRecentSearches(ctx); err != nil {
		errs = append(errs, err)
	} else {
		next.RecentSearches = recent
	}
	if partner, err := s.dao.GetPartnerSession(ctx); err != nil {
		errs = append(errs, err)
	} else {
		next.PartnerSession = partner
	}

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	if len(errs) > 0 {
		s.log.Warnf("[PreferencesStore] Hydrated with %d read failures", len(errs))
		return errors.Join(errs...)
	}
	s.log.Infof("[PreferencesStore] Hydrated: city=%q persona=%v music=%d recent=%d",
		next.SelectedCity, next.Persona != nil, len(next.MusicPreferences), len(next.RecentSearches))
	return nil
}

func (s *PreferencesStore) snapshot() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Snapshot returns a copy of every preference.
func (s *PreferencesStore) Snapshot() Preferences {
	return s.snapshot()
}

func (s *PreferencesStore) SelectedCity() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SelectedCity
}

func (s *PreferencesStore) Persona() *models.Persona {
	return s.snapshot().Persona
}

func (s *PreferencesStore) MusicPreferences() []string {
	return s.snapshot().MusicPreferences
}

func (s *PreferencesStore) RecentSearches() []string {
	return s.snapshot().RecentSearches
}

func (s *PreferencesStore) PartnerSession() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.PartnerSession
}

// AuthToken returns the stored token, or "" when IsAuthenticated is false.
func (s *PreferencesStore) AuthToken() string {
	s.mu.RLock()
	token := s.state.AuthToken
	s.mu.RUnlock()
	if !tokenUsable(token, s.now()) {
		return ""
	}
	return token
}

// IsAuthenticated reports whether a token is stored and its exp claim, if
// any, lies in the future. The signature is not checked; the backend does
// that on every request.
func (s *PreferencesStore) IsAuthenticated() bool {
	return s.AuthToken() != ""
}

// UserID returns the sub claim of a usable token, or "".
func (s *PreferencesStore) UserID() string {
	token := s.AuthToken()
	if token == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

func tokenUsable(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return false
	}
	return exp == nil || now.Before(exp.Time)
}

// update persists through write, applies apply to the in-memory state and
// notifies subscribers, all while holding the write lock.
func (s *PreferencesStore) update(key string, write func() error, apply func(*Preferences)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := write(); err != nil {
		return fmt.Errorf("[PreferencesStore] persist %s: %w", key, err)
	}

	s.mu.Lock()
	apply(&s.state)
	change := Change{Key: key, Preferences: s.state.clone()}
	subs := append([]subscriber(nil), s.subs...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(change)
	}
	return nil
}

// SetSelectedCity persists city. An empty city resets to the default.
func (s *PreferencesStore) SetSelectedCity(ctx context.Context, city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		city = s.defaultCity
	}
	return s.update(ChangeSelectedCity,
		func() error { return s.dao.SetSelectedCity(ctx, city) },
		func(p *Preferences) { p.SelectedCity = city })
}

func (s *PreferencesStore) SetAuthToken(ctx context.Context, token string) error {
	return s.update(ChangeAuthToken,
		func() error { return s.dao.SetAuthToken(ctx, token) },
		func(p *Preferences) { p.AuthToken = token })
}

// SignOut clears the token, cached profile and partner flag.
func (s *PreferencesStore) SignOut(ctx context.Context) error {
	return s.update(ChangeAuthToken,
		func() error { return s.dao.ClearSession(ctx) },
		func(p *Preferences) {
			p.AuthToken = ""
			p.PartnerSession = false
		})
}

func (s *PreferencesStore) SetPersona(ctx context.Context, persona *models.Persona) error {
	var stored *models.Persona
	if persona != nil {
		cp := *persona
		stored = &cp
	}
	return s.update(ChangePersona,
		func() error { return s.dao.SetPersona(ctx, stored) },
		func(p *Preferences) { p.Persona = stored })
}

func (s *PreferencesStore) SetMusicPreferences(ctx context.Context, prefs []string) error {
	cleaned := make([]string, 0, len(prefs))
	for _, pref := range prefs {
		if pref = strings.TrimSpace(pref); pref != "" {
			cleaned = append(cleaned, pref)
		}
	}
	return s.update(ChangeMusicPreferences,
		func() error { return s.dao.SetMusicPreferences(ctx, cleaned) },
		func(p *Preferences) { p.MusicPreferences = cleaned })
}

// AddRecentSearch records term at the front of the recent list.
func (s *PreferencesStore) AddRecentSearch(ctx context.Context, term string) error {
	var updated []string
	return s.update(ChangeRecentSearches,
		func() (err error) {
			updated, err = s.dao.AddRecentSearch(ctx, term)
			return err
		},
		func(p *Preferences) { p.RecentSearches = updated })
}

func (s *PreferencesStore) ClearRecentSearches(ctx context.Context) error {
	return s.update(ChangeRecentSearches,
		func() error { return s.dao.ClearRecentSearches(ctx) },
		func(p *Preferences) { p.RecentSearches = []string{} })
}

func (s *PreferencesStore) SetPartnerSession(ctx context.Context, active bool) error {
	return s.update(ChangePartnerSession,
		func() error { return s.dao.SetPartnerSession(ctx, active) },
		func(p *Preferences) { p.PartnerSession = active })
}

// Count reads a cached counter straight from storage.
func (s *PreferencesStore) Count(ctx context.Context, name string) int {
	n, err := s.dao.GetCount(ctx, name)
	if err != nil {
		s.log.Warnf("[PreferencesStore] Could not read %s: %v", name, err)
		return 0
	}
	return n
}

// SetCount overwrites a cached counter.
func (s *PreferencesStore) SetCount(ctx context.Context, name string, n int) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.dao.SetCount(ctx, name, n)
}

// AdjustCount adds delta to a cached counter, clamping at zero.
func (s *PreferencesStore) AdjustCount(ctx context.Context, name string, delta int) (int, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	n, err := s.dao.GetCount(ctx, name)
	if err != nil {
		return 0, err
	}
	n += delta
	if n < 0 {
		n = 0
	}
	if err := s.dao.SetCount(ctx, name, n); err != nil {
		return 0, err
	}
	return n, nil
}

// Subscribe registers fn for change notifications and returns a function
// that removes it. Subscribers are called in registration order.
func (s *PreferencesStore) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}
