package domain

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestPending          RequestStatus = "pending"
	RequestAssigned         RequestStatus = "assigned"
	RequestInProgress       RequestStatus = "in_progress"
	RequestPartsRecommended RequestStatus = "parts_recommended"
	RequestCompleted        RequestStatus = "completed"
	RequestCancelled        RequestStatus = "cancelled"
)

// ServiceRequest is a customer's call for help at a known location.
// MechanicID stays nil and Status stays pending until a mechanic is matched;
// that pair is the only part the assignment engine ever mutates.
type ServiceRequest struct {
	ID         uuid.UUID     `json:"id"`
	CustomerID uuid.UUID     `json:"customer_id"`
	MechanicID *uuid.UUID    `json:"mechanic_id"`
	Status     RequestStatus `json:"status"`
	Lat        float64       `json:"lat"`
	Lng        float64       `json:"lng"`
	Issue      string        `json:"issue"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func (r *ServiceRequest) Location() Coordinate {
	return NewCoordinate(r.Lat, r.Lng)
}

// Unassigned reports whether the assignment trigger may run: only brand-new
// pending requests without a mechanic. It must never override an existing
// assignment or touch a request in any other status.
func (r *ServiceRequest) Unassigned() bool {
	return r.Status == RequestPending && r.MechanicID == nil
}
