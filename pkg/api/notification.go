package api

import "time"

// Notification is one in-app notification for the owner.
type Notification struct {
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Type      string    `json:"type,omitempty"` // appointment, vaccine, system, ...
	ID        int64     `json:"id"`
	Read      bool      `json:"read"`
}

// NotificationRequest creates a local reminder-style notification.
type NotificationRequest struct {
	ScheduledAt time.Time `json:"scheduledAt,omitzero"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Type        string    `json:"type,omitempty"`
	PetID       int64     `json:"petId,omitempty"`
}
