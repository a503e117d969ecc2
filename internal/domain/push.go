package domain

import (
	"time"

	"github.com/google/uuid"
)

// PushPayload is what the dispatcher delivers to the push gateway for one
// already-committed notification. Delivery is best-effort: the durable record
// is the notification row written in the request's unit of work.
type PushPayload struct {
	NotificationID uuid.UUID        `json:"notification_id"`
	AccountID      uuid.UUID        `json:"account_id"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	ActionURL      string           `json:"action_url"`
	QueuedAt       time.Time        `json:"queued_at"`
}
