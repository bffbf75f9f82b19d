package api

import "time"

// Pet is one animal registered to an owner.
type Pet struct {
	CreatedAt time.Time  `json:"createdAt,omitzero"`
	UpdatedAt time.Time  `json:"updatedAt,omitzero"`
	Name      string     `json:"name"`
	Species   string     `json:"species"`
	Breed     string     `json:"breed,omitempty"`
	BirthDate string     `json:"birthDate,omitempty"` // YYYY-MM-DD
	Gender    string     `json:"gender,omitempty"`
	Color     string     `json:"color,omitempty"`
	QRCode    string     `json:"qrCode,omitempty"`
	Images    []PetImage `json:"images,omitempty"`
	WeightKg  float64    `json:"weightKg,omitempty"`
	ID        int64      `json:"id"`
	OwnerID   int64      `json:"ownerId"`
	IsLost    bool       `json:"isLost"`
}

// PetImage is one photo attached to a pet profile.
type PetImage struct {
	URL       string `json:"url"`
	ID        int64  `json:"id"`
	IsPrimary bool   `json:"isPrimary"`
}

// PetRequest creates or updates a pet.
type PetRequest struct {
	Name      string  `json:"name"`
	Species   string  `json:"species"`
	Breed     string  `json:"breed,omitempty"`
	BirthDate string  `json:"birthDate,omitempty"`
	Gender    string  `json:"gender,omitempty"`
	Color     string  `json:"color,omitempty"`
	WeightKg  float64 `json:"weightKg,omitempty"`
}

// LostReport marks a pet as lost via POST /pets/{id}/lost.
type LostReport struct {
	LastSeenAt  string `json:"lastSeenAt,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Reward      string `json:"reward,omitempty"`
}
