package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"routes_api/internal/models"
)

// MemoryRouteStore keeps routes in process memory with the same contract
// as the GORM store. It backs the handler tests.
type MemoryRouteStore struct {
	mu     sync.Mutex
	routes []models.Route
}

func NewMemoryRouteStore() *MemoryRouteStore {
	return &MemoryRouteStore{}
}

func (s *MemoryRouteStore) Create(route *models.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.flightTaken(route.Flight, uuid.Nil) {
		return ErrDuplicateFlight
	}

	if route.ID == uuid.Nil {
		route.ID = uuid.New()
	}
	if route.CreatedAt.IsZero() {
		route.CreatedAt = time.Now().UTC()
	}

	s.routes = append(s.routes, *route)
	return nil
}

func (s *MemoryRouteStore) List(filter ListFilter) ([]models.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	// Newest first: walk the insertion order backwards.
	matched := []models.Route{}
	for i := len(s.routes) - 1; i >= 0; i-- {
		r := s.routes[i]
		if filter.Flight != "" && (r.Flight == nil || *r.Flight != filter.Flight) {
			continue
		}
		matched = append(matched, r)
	}

	if filter.Offset >= len(matched) {
		return []models.Route{}, nil
	}
	matched = matched[filter.Offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *MemoryRouteStore) Count() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.routes)), nil
}

func (s *MemoryRouteStore) Get(id uuid.UUID) (*models.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.routes {
		if s.routes[i].ID == id {
			route := s.routes[i]
			return &route, nil
		}
	}
	return nil, ErrRouteNotFound
}

func (s *MemoryRouteStore) Update(route *models.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.flightTaken(route.Flight, route.ID) {
		return ErrDuplicateFlight
	}

	for i := range s.routes {
		if s.routes[i].ID == route.ID {
			s.routes[i] = *route
			return nil
		}
	}
	return ErrRouteNotFound
}

func (s *MemoryRouteStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.routes {
		if s.routes[i].ID == id {
			s.routes = append(s.routes[:i], s.routes[i+1:]...)
			return nil
		}
	}
	return ErrRouteNotFound
}

func (s *MemoryRouteStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes = nil
	return nil
}

// flightTaken reports whether another route (different id) already uses
// the given flight number. Callers hold the lock.
func (s *MemoryRouteStore) flightTaken(flight *string, self uuid.UUID) bool {
	if flight == nil {
		return false
	}
	for i := range s.routes {
		if s.routes[i].ID == self {
			continue
		}
		if s.routes[i].Flight != nil && *s.routes[i].Flight == *flight {
			return true
		}
	}
	return false
}
