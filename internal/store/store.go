package store

import (
	"errors"

	"github.com/google/uuid"

	"routes_api/internal/models"
)

var (
	// ErrRouteNotFound is returned when no route exists for the given id.
	ErrRouteNotFound = errors.New("route not found")

	// ErrDuplicateFlight is returned when a create or update would reuse
	// an existing flight number.
	ErrDuplicateFlight = errors.New("flight number already exists")
)

// ListFilter narrows and pages a route listing. A zero Limit means the
// default page size of 100. Flight, when non-empty, is an exact match.
type ListFilter struct {
	Offset int
	Limit  int
	Flight string
}

// DefaultLimit is the page size applied when a listing request does not
// specify one.
const DefaultLimit = 100

// RouteStore is the persistence seam for route records. Controllers only
// see this interface; the GORM implementation backs production and the
// in-memory one backs tests.
type RouteStore interface {
	Create(route *models.Route) error
	List(filter ListFilter) ([]models.Route, error)
	Count() (int64, error)
	Get(id uuid.UUID) (*models.Route, error)
	Update(route *models.Route) error
	Delete(id uuid.UUID) error
	Reset() error
}
