package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"routes_api/internal/models"
)

// GormRouteStore persists routes through a GORM Postgres handle.
type GormRouteStore struct {
	db *gorm.DB
}

func NewGormRouteStore(db *gorm.DB) *GormRouteStore {
	return &GormRouteStore{db: db}
}

func (s *GormRouteStore) Create(route *models.Route) error {
	if err := s.db.Create(route).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

func (s *GormRouteStore) List(filter ListFilter) ([]models.Route, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := s.db.Order("created_at DESC").Offset(filter.Offset).Limit(limit)
	if filter.Flight != "" {
		q = q.Where("flight = ?", filter.Flight)
	}

	routes := []models.Route{}
	if err := q.Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

func (s *GormRouteStore) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Route{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormRouteStore) Get(id uuid.UUID) (*models.Route, error) {
	var route models.Route
	if err := s.db.First(&route, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}
	return &route, nil
}

func (s *GormRouteStore) Update(route *models.Route) error {
	if err := s.db.Save(route).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

func (s *GormRouteStore) Delete(id uuid.UUID) error {
	res := s.db.Delete(&models.Route{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRouteNotFound
	}
	return nil
}

// Reset truncates the routes table. Development-only, wired to the reset
// endpoints.
func (s *GormRouteStore) Reset() error {
	return s.db.Exec("TRUNCATE TABLE routes RESTART IDENTITY CASCADE").Error
}

// translateErr maps Postgres unique violations (code 23505, here always
// the flight index) onto ErrDuplicateFlight.
func translateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateFlight
	}
	return err
}
