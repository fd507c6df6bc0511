package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Route represents a single flight leg between two airports.
// Departure must always precede arrival; capacity is the number of seats
// available on the leg.
type Route struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Flight is the optional flight number. When set it must be unique
	// and can be used as an exact-match filter on listing.
	Flight *string `gorm:"uniqueIndex" json:"flight,omitempty"`

	Origin      string `gorm:"not null" json:"origin"`
	Destination string `gorm:"not null" json:"destination"`

	DepartureDate time.Time `gorm:"not null" json:"departure_date"`
	ArrivalDate   time.Time `gorm:"not null" json:"arrival_date"`

	Capacity    int    `gorm:"not null" json:"capacity"`
	Description string `json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// BeforeCreate assigns a fresh UUID unless one was provided upfront.
func (r *Route) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Validate checks the route against its creation constraints and returns
// a map of field name to problem description, or nil when the route is
// valid. Update handlers run the same rules against the merged result.
func (r *Route) Validate() map[string]string {
	fields := map[string]string{}

	if r.Origin == "" {
		fields["origin"] = "is required"
	}
	if r.Destination == "" {
		fields["destination"] = "is required"
	}
	if r.DepartureDate.IsZero() {
		fields["departure_date"] = "is required"
	}
	if r.ArrivalDate.IsZero() {
		fields["arrival_date"] = "is required"
	}
	if r.Capacity <= 0 {
		fields["capacity"] = "must be greater than zero"
	}
	if !r.DepartureDate.IsZero() && !r.ArrivalDate.IsZero() && !r.DepartureDate.Before(r.ArrivalDate) {
		fields["departure_date"] = "must precede arrival_date"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
