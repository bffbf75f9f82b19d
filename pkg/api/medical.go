package api

import "time"

// MedicalRecord is one entry of a pet's medical history.
type MedicalRecord struct {
	Date        time.Time     `json:"date"`
	CreatedAt   time.Time     `json:"createdAt,omitzero"`
	Type        string        `json:"type"` // consultation, surgery, exam, ...
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	VetName     string        `json:"vetName,omitempty"`
	DocumentURL string        `json:"documentUrl,omitempty"`
	Photos      []RecordPhoto `json:"photos,omitempty"`
	ID          int64         `json:"id"`
	PetID       int64         `json:"petId"`
}

// MedicalRecordRequest creates or updates a medical record.
type MedicalRecordRequest struct {
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	VetName     string    `json:"vetName,omitempty"`
}

// RecordPhoto is one photo attached to a medical record.
type RecordPhoto struct {
	URL      string `json:"url"`
	Caption  string `json:"caption,omitempty"`
	ID       int64  `json:"id"`
	Position int    `json:"position"`
}

// PhotoReorderRequest reorders the photos of a medical record.
type PhotoReorderRequest struct {
	PhotoIDs []int64 `json:"photoIds"`
}

// Vaccine is one vaccination entry, past or upcoming.
type Vaccine struct {
	AppliedAt  time.Time `json:"appliedAt,omitzero"`
	NextDoseAt time.Time `json:"nextDoseAt,omitzero"`
	Name       string    `json:"name"`
	VetName    string    `json:"vetName,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	PetName    string    `json:"petName,omitempty"`
	ID         int64     `json:"id"`
	PetID      int64     `json:"petId"`
}

// VaccineRequest registers or updates a vaccination.
type VaccineRequest struct {
	AppliedAt  time.Time `json:"appliedAt"`
	NextDoseAt time.Time `json:"nextDoseAt,omitzero"`
	Name       string    `json:"name"`
	VetName    string    `json:"vetName,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}
