// Package services holds the thin per-domain wrappers over the request
// pipeline. Every call returns the normalized envelope; callers branch on
// Response.Success and decode Data when they need the payload.
package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/petcare-cl/petcare-cli/internal/client/api"
	pkgapi "github.com/petcare-cl/petcare-cli/pkg/api"
)

// Pets covers the /pets endpoints.
type Pets struct {
	client *api.Client
}

// NewPets creates the pets service.
func NewPets(client *api.Client) *Pets {
	return &Pets{client: client}
}

// PetListOptions filter and paginate List.
type PetListOptions struct {
	Search  string
	Species string
	Page    int
	Limit   int
}

// List returns the owner's pets.
func (s *Pets) List(ctx context.Context, opts PetListOptions) *pkgapi.Response {
	query := url.Values{}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.Species != "" {
		query.Set("species", opts.Species)
	}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	return s.client.Get(ctx, "/pets", query)
}

// Get returns one pet.
func (s *Pets) Get(ctx context.Context, petID int64) *pkgapi.Response {
	return s.client.Get(ctx, fmt.Sprintf("/pets/%d", petID), nil)
}

// Create registers a new pet.
func (s *Pets) Create(ctx context.Context, req pkgapi.PetRequest) *pkgapi.Response {
	return s.client.Post(ctx, "/pets", req)
}

// Update modifies a pet.
func (s *Pets) Update(ctx context.Context, petID int64, req pkgapi.PetRequest) *pkgapi.Response {
	return s.client.Put(ctx, fmt.Sprintf("/pets/%d", petID), req)
}

// Delete removes a pet.
func (s *Pets) Delete(ctx context.Context, petID int64) *pkgapi.Response {
	return s.client.Delete(ctx, fmt.Sprintf("/pets/%d", petID))
}

// UploadImage attaches one photo to a pet profile.
func (s *Pets) UploadImage(ctx context.Context, petID int64, image api.File, onProgress func(int)) *pkgapi.Response {
	return s.client.Upload(ctx, fmt.Sprintf("/pets/%d/images", petID), nil, []api.File{image}, onProgress)
}

// UploadImages attaches several photos in one request.
func (s *Pets) UploadImages(ctx context.Context, petID int64, images []api.File, onProgress func(int)) *pkgapi.Response {
	return s.client.Upload(ctx, fmt.Sprintf("/pets/%d/images/multiple", petID), nil, images, onProgress)
}

// DeleteImage removes one photo from a pet profile.
func (s *Pets) DeleteImage(ctx context.Context, petID, imageID int64) *pkgapi.Response {
	return s.client.Delete(ctx, fmt.Sprintf("/pets/%d/images/%d", petID, imageID))
}

// ReportLost marks a pet as lost.
func (s *Pets) ReportLost(ctx context.Context, petID int64, report pkgapi.LostReport) *pkgapi.Response {
	return s.client.Post(ctx, fmt.Sprintf("/pets/%d/lost", petID), report)
}

// ReportFound clears a pet's lost flag.
func (s *Pets) ReportFound(ctx context.Context, petID int64) *pkgapi.Response {
	return s.client.Post(ctx, fmt.Sprintf("/pets/%d/found", petID), nil)
}

// MedicalHistory returns the pet's consolidated medical history.
func (s *Pets) MedicalHistory(ctx context.Context, petID int64, query url.Values) *pkgapi.Response {
	return s.client.Get(ctx, fmt.Sprintf("/pets/%d/medical-history", petID), query)
}

// Vaccines returns the pet's vaccination list.
func (s *Pets) Vaccines(ctx context.Context, petID int64, query url.Values) *pkgapi.Response {
	return s.client.Get(ctx, fmt.Sprintf("/pets/%d/vaccines", petID), query)
}

// DownloadQR returns the pet's QR code image (base64 payload).
func (s *Pets) DownloadQR(ctx context.Context, petID int64) *pkgapi.Response {
	return s.client.Get(ctx, fmt.Sprintf("/pets/%d/qr/download", petID), nil)
}
