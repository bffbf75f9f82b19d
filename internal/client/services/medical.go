package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/petcare-cl/petcare-cli/internal/client/api"
	pkgapi "github.com/petcare-cl/petcare-cli/pkg/api"
)

// Medical covers the /medical-records, /photos and /vaccines endpoints.
type Medical struct {
	client *api.Client
}

// NewMedical creates the medical records service.
func NewMedical(client *api.Client) *Medical {
	return &Medical{client: client}
}

// RecordsForPet returns the medical records of one pet.
func (s *Medical) RecordsForPet(ctx context.Context, petID int64) *pkgapi.Response {
	return s.client.Get(ctx, fmt.Sprintf("/medical-records/pets/%d/medical-records", petID), nil)
}

// CreateRecord adds a medical record to a pet.
func (s *Medical) CreateRecord(ctx context.Context, petID int64, req pkgapi.MedicalRecordRequest) *pkgapi.Response {
	return s.client.Post(ctx, fmt.Sprintf("/medical-records/pets/%d/medical-records", petID), req)
}

// Record returns one medical record.
func (s *Medical) Record(ctx context.Context, recordID int64) *pkgapi.Response {
	return s.client.Get(ctx, fmt.Sprintf("/medical-records/%d", recordID), nil)
}

// UpdateRecord edits a medical record.
func (s *Medical) UpdateRecord(ctx context.Context, recordID int64, req pkgapi.MedicalRecordRequest) *pkgapi.Response {
	return s.client.Put(ctx, fmt.Sprintf("/medical-records/%d", recordID), req)
}

// DeleteRecord removes a medical record.
func (s *Medical) DeleteRecord(ctx context.Context, recordID int64) *pkgapi.Response {
	return s.client.Delete(ctx, fmt.Sprintf("/medical-records/%d", recordID))
}

// UploadDocument attaches a document (exam result, prescription) to a record.
func (s *Medical) UploadDocument(ctx context.Context, recordID int64, doc api.File, onProgress func(int)) *pkgapi.Response {
	return s.client.Upload(ctx, fmt.Sprintf("/medical-records/%d/document", recordID), nil, []api.File{doc}, onProgress)
}

// Photos returns the photos of a medical record.
func (s *Medical) Photos(ctx context.Context, recordID int64) *pkgapi.Response {
	return s.client.Get(ctx, fmt.Sprintf("/medical-records/%d/photos", recordID), nil)
}

// AddPhotos attaches photos to a medical record.
func (s *Medical) AddPhotos(ctx context.Context, recordID int64, photos []api.File, onProgress func(int)) *pkgapi.Response {
	return s.client.Upload(ctx, fmt.Sprintf("/medical-records/%d/photos", recordID), nil, photos, onProgress)
}

// ReorderPhotos changes the display order of a record's photos.
func (s *Medical) ReorderPhotos(ctx context.Context, recordID int64, req pkgapi.PhotoReorderRequest) *pkgapi.Response {
	return s.client.Post(ctx, fmt.Sprintf("/medical-records/%d/photos/reorder", recordID), req)
}

// UpdatePhoto edits one photo's caption or metadata.
func (s *Medical) UpdatePhoto(ctx context.Context, attachmentID int64, body any) *pkgapi.Response {
	return s.client.Put(ctx, fmt.Sprintf("/photos/%d", attachmentID), body)
}

// DeletePhoto removes one photo.
func (s *Medical) DeletePhoto(ctx context.Context, attachmentID int64) *pkgapi.Response {
	return s.client.Delete(ctx, fmt.Sprintf("/photos/%d", attachmentID))
}

// UpcomingVaccines returns vaccines due soon across all pets.
func (s *Medical) UpcomingVaccines(ctx context.Context, query url.Values) *pkgapi.Response {
	return s.client.Get(ctx, "/vaccines/upcoming", query)
}

// Vaccine returns one vaccination entry.
func (s *Medical) Vaccine(ctx context.Context, vaccineID int64) *pkgapi.Response {
	return s.client.Get(ctx, fmt.Sprintf("/vaccines/%d", vaccineID), nil)
}

// CreateVaccine registers a vaccination for a pet.
func (s *Medical) CreateVaccine(ctx context.Context, petID int64, req pkgapi.VaccineRequest) *pkgapi.Response {
	return s.client.Post(ctx, fmt.Sprintf("/vaccines/pets/%d/vaccines", petID), req)
}

// UpdateVaccine edits a vaccination entry.
func (s *Medical) UpdateVaccine(ctx context.Context, vaccineID int64, req pkgapi.VaccineRequest) *pkgapi.Response {
	return s.client.Put(ctx, fmt.Sprintf("/vaccines/%d", vaccineID), req)
}

// DeleteVaccine removes a vaccination entry.
func (s *Medical) DeleteVaccine(ctx context.Context, vaccineID int64) *pkgapi.Response {
	return s.client.Delete(ctx, fmt.Sprintf("/vaccines/%d", vaccineID))
}
