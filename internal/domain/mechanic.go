package domain

import (
	"time"

	"github.com/google/uuid"
)

const DefaultServiceRadiusKm = 10.0

// Mechanic is one entry of the mechanic registry. Position comes from the
// owning account and may be unknown; such a mechanic can never be matched.
type Mechanic struct {
	ID              uuid.UUID  `json:"id"`
	AccountID       uuid.UUID  `json:"account_id"`
	Position        Coordinate `json:"position"`
	IsAvailable     bool       `json:"is_available"`
	IsApproved      bool       `json:"is_approved"`
	AccountActive   bool       `json:"account_active"`
	ServiceRadiusKm float64    `json:"service_radius_km"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Eligible reports whether the mechanic may be considered for assignment at
// all. Range is checked separately against the request location.
func (m *Mechanic) Eligible() bool {
	return m.IsAvailable && m.IsApproved && m.AccountActive && m.Position.Known()
}
