package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/petcare-cl/petcare-cli/internal/client/api"
	pkgapi "github.com/petcare-cl/petcare-cli/pkg/api"
)

// Appointments covers the /appointments endpoints.
type Appointments struct {
	client *api.Client
}

// NewAppointments creates the appointments service.
func NewAppointments(client *api.Client) *Appointments {
	return &Appointments{client: client}
}

// List returns the owner's appointments. query supports status/petId/page.
func (s *Appointments) List(ctx context.Context, query url.Values) *pkgapi.Response {
	return s.client.Get(ctx, "/appointments", query)
}

// Get returns one appointment.
func (s *Appointments) Get(ctx context.Context, appointmentID int64) *pkgapi.Response {
	return s.client.Get(ctx, fmt.Sprintf("/appointments/%d", appointmentID), nil)
}

// Count returns the number of upcoming appointments.
func (s *Appointments) Count(ctx context.Context) *pkgapi.Response {
	return s.client.Get(ctx, "/appointments/count", nil)
}

// CountVaccines returns the number of upcoming vaccine appointments.
func (s *Appointments) CountVaccines(ctx context.Context) *pkgapi.Response {
	return s.client.Get(ctx, "/appointments/count-vaccines", nil)
}

// Create books an appointment.
func (s *Appointments) Create(ctx context.Context, req pkgapi.AppointmentRequest) *pkgapi.Response {
	return s.client.Post(ctx, "/appointments", req)
}

// Update reschedules or edits an appointment.
func (s *Appointments) Update(ctx context.Context, appointmentID int64, req pkgapi.AppointmentRequest) *pkgapi.Response {
	return s.client.Put(ctx, fmt.Sprintf("/appointments/%d", appointmentID), req)
}

// Cancel cancels an appointment without deleting it.
func (s *Appointments) Cancel(ctx context.Context, appointmentID int64) *pkgapi.Response {
	return s.client.Put(ctx, fmt.Sprintf("/appointments/%d/cancel", appointmentID), nil)
}

// Delete removes an appointment.
func (s *Appointments) Delete(ctx context.Context, appointmentID int64) *pkgapi.Response {
	return s.client.Delete(ctx, fmt.Sprintf("/appointments/%d", appointmentID))
}

// Veterinaries covers the /veterinaries endpoints.
type Veterinaries struct {
	client *api.Client
}

// NewVeterinaries creates the veterinaries service.
func NewVeterinaries(client *api.Client) *Veterinaries {
	return &Veterinaries{client: client}
}

// List returns the bookable clinics.
func (s *Veterinaries) List(ctx context.Context, query url.Values) *pkgapi.Response {
	return s.client.Get(ctx, "/veterinaries", query)
}

// Get returns one clinic.
func (s *Veterinaries) Get(ctx context.Context, veterinaryID int64) *pkgapi.Response {
	return s.client.Get(ctx, fmt.Sprintf("/veterinaries/%d", veterinaryID), nil)
}
