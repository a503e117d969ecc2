package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationServiceAssigned  NotificationType = "service_assigned"
	NotificationMechanicAssigned NotificationType = "mechanic_assigned"
)

// Notification is a write-only output of the assignment engine; the engine
// never reads it back.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	AccountID uuid.UUID        `json:"account_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	ActionURL string           `json:"action_url"`
	CreatedAt time.Time        `json:"created_at"`
}
