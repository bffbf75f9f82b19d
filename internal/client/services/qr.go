package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/petcare-cl/petcare-cli/internal/client/api"
	pkgapi "github.com/petcare-cl/petcare-cli/pkg/api"
)

// QR covers the /qr endpoints. Scan is public: whoever finds a lost pet can
// resolve the code without an account.
type QR struct {
	client *api.Client
}

// NewQR creates the QR service.
func NewQR(client *api.Client) *QR {
	return &QR{client: client}
}

// Scan resolves a scanned code to the pet's public contact card.
func (s *QR) Scan(ctx context.Context, code string) *pkgapi.Response {
	return s.client.Get(ctx, "/qr/"+url.PathEscape(code), nil)
}

// Pet resolves a pet ID to its public profile, same audience as Scan.
func (s *QR) Pet(ctx context.Context, petID int64) *pkgapi.Response {
	return s.client.Get(ctx, fmt.Sprintf("/qr/pet/%d", petID), nil)
}

// Generate creates (or returns the existing) QR code for a pet.
func (s *QR) Generate(ctx context.Context, petID int64) *pkgapi.Response {
	return s.client.Post(ctx, fmt.Sprintf("/qr/pets/%d/generate", petID), nil)
}

// Regenerate invalidates the current code and issues a new one.
func (s *QR) Regenerate(ctx context.Context, petID int64, reason string) *pkgapi.Response {
	return s.client.Post(ctx, fmt.Sprintf("/qr/pets/%d/regenerate", petID), pkgapi.RegenerateQRRequest{Reason: reason})
}

// Scans returns the scan history of a pet's code.
func (s *QR) Scans(ctx context.Context, petID int64, query url.Values) *pkgapi.Response {
	return s.client.Get(ctx, fmt.Sprintf("/qr/pets/%d/scans", petID), query)
}

// Download returns the QR image (base64 payload).
func (s *QR) Download(ctx context.Context, petID int64) *pkgapi.Response {
	return s.client.Get(ctx, fmt.Sprintf("/qr/pets/%d/download", petID), nil)
}

// Legal covers the public /legal endpoints.
type Legal struct {
	client *api.Client
}

// NewLegal creates the legal content service.
func NewLegal(client *api.Client) *Legal {
	return &Legal{client: client}
}

// Terms returns the terms of service document.
func (s *Legal) Terms(ctx context.Context) *pkgapi.Response {
	return s.client.Get(ctx, "/legal/terms", nil)
}

// Privacy returns the privacy policy document.
func (s *Legal) Privacy(ctx context.Context) *pkgapi.Response {
	return s.client.Get(ctx, "/legal/privacy", nil)
}
