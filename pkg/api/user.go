package api

import "time"

// User is the denormalized snapshot of an owner account. The client treats
// it as a cache: always safe to overwrite with a fresher copy from the
// server, never the source of truth.
type User struct {
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Role      string    `json:"role,omitempty"`
	ID        int64     `json:"id"`
}

// UpdateProfileRequest carries the editable profile fields for POST /users/me.
// Zero-value fields are omitted so the server applies a partial update.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

// NotificationSettings mirrors /users/settings/notifications.
type NotificationSettings struct {
	Appointments bool `json:"appointments"`
	Vaccines     bool `json:"vaccines"`
	Reminders    bool `json:"reminders"`
	Promotions   bool `json:"promotions"`
}

// Preferences mirrors /users/settings/preferences.
type Preferences struct {
	Language string `json:"language"`
	Timezone string `json:"timezone,omitempty"`
	Theme    string `json:"theme,omitempty"`
}

// LanguageRequest sets the account language via PUT /users/settings/language.
type LanguageRequest struct {
	Language string `json:"language"`
}
