package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lintang-b-s/campusnav/pkg"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrUnknownLocation  = errors.New("unknown location")
	ErrFavoriteNotFound = errors.New("location is not a favorite")
)

// LocationChecker. tells whether a location name exists in the campus graph.
type LocationChecker interface {
	HasLocation(name string) bool
}

// RecentRoute. a route query recorded for a session.
type RecentRoute struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	DistanceKm  float64   `json:"distance_km"`
	TimeMinutes int       `json:"time_minutes"`
	Found       bool      `json:"found"`
	RequestedAt time.Time `json:"requested_at"`
}

type Session struct {
	id        string
	favorites []string
	recent    []RecentRoute
	createdAt time.Time
	lastSeen  time.Time
}

func (s *Session) GetID() string {
	return s.id
}

func (s *Session) GetFavorites() []string {
	return s.favorites
}

func (s *Session) GetRecentRoutes() []RecentRoute {
	return s.recent
}

func (s *Session) GetCreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) GetLastSeen() time.Time {
	return s.lastSeen
}

// Store. per-client navigation state (favorite locations, recent routes).
// the only mutable shared state of the server, guarded by mu.
type Store struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	locations LocationChecker
	maxRecent int
	now       func() time.Time
	log       *zap.Logger
}

func NewStore(locations LocationChecker, log *zap.Logger) *Store {
	return &Store{
		sessions:  make(map[string]*Session),
		locations: locations,
		maxRecent: pkg.MAX_RECENT_ROUTES,
		now:       time.Now,
		log:       log,
	}
}

// Create. start a new session and return its id.
func (st *Store) Create() string {
	now := st.now()
	s := &Session{
		id:        uuid.NewString(),
		favorites: make([]string, 0),
		recent:    make([]RecentRoute, 0),
		createdAt: now,
		lastSeen:  now,
	}

	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()

	return s.id
}

// Get. snapshot of the session with id.
func (st *Store) Get(id string) (Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return Session{
		id:        s.id,
		favorites: append([]string(nil), s.favorites...),
		recent:    append([]RecentRoute(nil), s.recent...),
		createdAt: s.createdAt,
		lastSeen:  s.lastSeen,
	}, nil
}

// touch. caller must hold the write lock.
func (st *Store) touch(id string) (*Session, error) {
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.lastSeen = st.now()
	return s, nil
}

// AddFavorite. add location to the favorites of the session. adding an existing favorite is a no-op.
func (st *Store) AddFavorite(id, location string) error {
	if !st.locations.HasLocation(location) {
		return ErrUnknownLocation
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	s, err := st.touch(id)
	if err != nil {
		return err
	}
	for _, fav := range s.favorites {
		if fav == location {
			return nil
		}
	}
	s.favorites = append(s.favorites, location)
	return nil
}

func (st *Store) RemoveFavorite(id, location string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, err := st.touch(id)
	if err != nil {
		return err
	}
	for i, fav := range s.favorites {
		if fav == location {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return nil
		}
	}
	return ErrFavoriteNotFound
}

// Favorites. favorites in insertion order
func (st *Store) Favorites(id string) ([]string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, err := st.touch(id)
	if err != nil {
		return nil, err
	}
	favorites := make([]string, 0, len(s.favorites))
	return append(favorites, s.favorites...), nil
}

// RecordRoute. prepend route to the recent routes of the session, keeping at most maxRecent entries.
func (st *Store) RecordRoute(id string, route RecentRoute) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, err := st.touch(id)
	if err != nil {
		return err
	}
	if route.RequestedAt.IsZero() {
		route.RequestedAt = s.lastSeen
	}
	s.recent = append([]RecentRoute{route}, s.recent...)
	if len(s.recent) > st.maxRecent {
		s.recent = s.recent[:st.maxRecent]
	}
	return nil
}

// RecentRoutes. most recent first
func (st *Store) RecentRoutes(id string) ([]RecentRoute, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, err := st.touch(id)
	if err != nil {
		return nil, err
	}
	recent := make([]RecentRoute, 0, len(s.recent))
	return append(recent, s.recent...), nil
}

func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// EvictIdle. remove sessions not used for longer than ttl, returns the number of evicted sessions.
func (st *Store) EvictIdle(ttl time.Duration) int {
	cutoff := st.now().Add(-ttl)

	st.mu.Lock()
	defer st.mu.Unlock()
	evicted := 0
	for id, s := range st.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(st.sessions, id)
			evicted++
		}
	}
	return evicted
}

// RunEvictor. evict idle sessions every interval until ctx is done.
func (st *Store) RunEvictor(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.EvictIdle(ttl); n > 0 {
				st.log.Info("evicted idle sessions", zap.Int("count", n))
			}
		}
	}
}
