package api

import "time"

// Appointment statuses as reported by the server.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment is a scheduled veterinary visit.
type Appointment struct {
	ScheduledAt  time.Time `json:"scheduledAt"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	PetName      string    `json:"petName,omitempty"`
	Veterinary   string    `json:"veterinaryName,omitempty"`
	ID           int64     `json:"id"`
	PetID        int64     `json:"petId"`
	VeterinaryID int64     `json:"veterinaryId"`
}

// AppointmentRequest books or reschedules an appointment.
type AppointmentRequest struct {
	ScheduledAt  time.Time `json:"scheduledAt"`
	Reason       string    `json:"reason"`
	Notes        string    `json:"notes,omitempty"`
	PetID        int64     `json:"petId"`
	VeterinaryID int64     `json:"veterinaryId"`
}

// CountResponse is the payload of the /appointments/count style endpoints.
type CountResponse struct {
	Count int64 `json:"count"`
}

// Veterinary is a clinic the owner can book with.
type Veterinary struct {
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Schedule string `json:"schedule,omitempty"`
	ID       int64  `json:"id"`
}
