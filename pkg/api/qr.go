package api

import "time"

// QRCode is a pet's identification QR code.
type QRCode struct {
	Code        string `json:"code"`
	ImageBase64 string `json:"imageBase64,omitempty"`
	URL         string `json:"url,omitempty"`
	PetID       int64  `json:"petId"`
}

// QRScan is one recorded scan of a pet's QR code.
type QRScan struct {
	ScannedAt time.Time `json:"scannedAt"`
	Location  string    `json:"location,omitempty"`
	ID        int64     `json:"id"`
}

// RegenerateQRRequest invalidates the current code and issues a new one.
type RegenerateQRRequest struct {
	Reason string `json:"reason,omitempty"`
}

// LegalContent is a versioned legal document (terms, privacy policy).
type LegalContent struct {
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Version   string    `json:"version,omitempty"`
}
