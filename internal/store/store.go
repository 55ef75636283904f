package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"heatpump_check/internal/model"
)

// ErrNotFound is returned when a user has no catalog overrides.
var ErrNotFound = errors.New("catalog overrides not found")

// CatalogStore persists per-user overrides of the intervention catalog.
type CatalogStore interface {
	Get(ctx context.Context, user string) ([]model.Intervention, error)
	Put(ctx context.Context, user string, overrides []model.Intervention) error
	Delete(ctx context.Context, user string) error
}

// Store holds catalog overrides in memory, keyed by user.
type Store struct {
	mu        sync.RWMutex
	overrides map[string][]model.Intervention
}

var _ CatalogStore = (*Store)(nil)

func New() *Store {
	return &Store{
		overrides: make(map[string][]model.Intervention),
	}
}

// Get returns a copy of the user's overrides.
func (s *Store) Get(_ context.Context, user string) ([]model.Intervention, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ov, ok := s.overrides[normalizeUser(user)]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(ov), nil
}

// Put replaces the user's overrides. Entries are kept sorted by ID.
func (s *Store) Put(_ context.Context, user string, overrides []model.Intervention) error {
	key := normalizeUser(user)
	if key == "" {
		return errors.New("user must not be empty")
	}

	ov := clone(overrides)
	sort.Slice(ov, func(i, j int) bool { return ov[i].ID < ov[j].ID })

	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[key] = ov
	return nil
}

func (s *Store) Delete(_ context.Context, user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeUser(user)
	if _, ok := s.overrides[key]; !ok {
		return ErrNotFound
	}
	delete(s.overrides, key)
	return nil
}

// Users returns all users with overrides, sorted.
func (s *Store) Users() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]string, 0, len(s.overrides))
	for u := range s.overrides {
		users = append(users, u)
	}
	sort.Strings(users)
	return users
}

// Resolve returns the user's overrides, or nil when there are none.
// Lookup failures other than ErrNotFound are returned.
func Resolve(ctx context.Context, s CatalogStore, user string) ([]model.Intervention, error) {
	if s == nil || normalizeUser(user) == "" {
		return nil, nil
	}
	ov, err := s.Get(ctx, user)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return ov, err
}

func normalizeUser(user string) string {
	return strings.ToLower(strings.TrimSpace(user))
}

func clone(in []model.Intervention) []model.Intervention {
	if in == nil {
		return []model.Intervention{}
	}
	out := make([]model.Intervention, len(in))
	copy(out, in)
	return out
}
