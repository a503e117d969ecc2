package domain

import "github.com/google/uuid"

// Lat and Lng are pointers so that an absent coordinate is a validation
// failure instead of silently decoding to the (valid) zero value.
type CreateServiceRequestRequest struct {
	CustomerID string   `json:"customer_id" validate:"required,uuid"`
	Lat        *float64 `json:"lat" validate:"required,lat"`
	Lng        *float64 `json:"lng" validate:"required,lng"`
	Issue      string   `json:"issue" validate:"required,max=2000"`
}

type RegisterMechanicRequest struct {
	AccountID       string   `json:"account_id" validate:"required,uuid"`
	Lat             *float64 `json:"lat" validate:"omitempty,lat"`
	Lng             *float64 `json:"lng" validate:"omitempty,lng"`
	ServiceRadiusKm *float64 `json:"service_radius_km" validate:"omitempty,radius_km"`
}

type UpdateMechanicRequest struct {
	Lat             *float64 `json:"lat" validate:"omitempty,lat"`
	Lng             *float64 `json:"lng" validate:"omitempty,lng"`
	IsAvailable     *bool    `json:"is_available"`
	IsApproved      *bool    `json:"is_approved"`
	AccountActive   *bool    `json:"account_active"`
	ServiceRadiusKm *float64 `json:"service_radius_km" validate:"omitempty,radius_km"`
}

type ListMechanicsResponse struct {
	Mechanics []Mechanic `json:"mechanics"`
	Page      int        `json:"page"`
	Limit     int        `json:"limit"`
	Total     int64      `json:"total"`
}

type ListNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	AccountID     uuid.UUID      `json:"account_id"`
}
