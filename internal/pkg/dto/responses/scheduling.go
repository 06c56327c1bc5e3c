package responses

import "time"

type Slot struct {
	ID              string    `json:"id"`
	ProviderID      string    `json:"provider_id"`
	InstitutionID   string    `json:"institution_id"`
	InstitutionName string    `json:"institution_name,omitempty"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	Booked          bool      `json:"booked"`
	VisitID         string    `json:"visit_id,omitempty"`
}

type VisitParty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type VisitCode struct {
	Type   string `json:"type"`
	Value  string `json:"value"`
	Active bool   `json:"active"`
}

type Visit struct {
	ID          string      `json:"id"`
	Patient     VisitParty  `json:"patient"`
	Provider    VisitParty  `json:"provider"`
	Institution VisitParty  `json:"institution"`
	SlotID      string      `json:"slot_id"`
	Start       time.Time   `json:"start"`
	End         time.Time   `json:"end"`
	Status      string      `json:"status"`
	Remarks     string      `json:"remarks,omitempty"`
	Note        string      `json:"note,omitempty"`
	Codes       []VisitCode `json:"codes,omitempty"`
}

type Review struct {
	ID          string  `json:"id"`
	SubjectID   string  `json:"subject_id"`
	SubjectType string  `json:"subject_type"`
	Value       float64 `json:"value"`
}
