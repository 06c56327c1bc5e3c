package requests

import "time"

type CreateSlot struct {
	ProviderID    string    `json:"provider_id" validate:"required,object_id"`
	InstitutionID string    `json:"institution_id" validate:"required,object_id"`
	Start         time.Time `json:"start" validate:"required"`
	End           time.Time `json:"end" validate:"required"`
}

type CreateRecurringSlots struct {
	ProviderID      string    `json:"provider_id" validate:"required,object_id"`
	InstitutionID   string    `json:"institution_id" validate:"required,object_id"`
	Start           time.Time `json:"start" validate:"required"`
	End             time.Time `json:"end" validate:"required"`
	IntervalMinutes int       `json:"interval_minutes" validate:"required,min=5,max=480"`
}

type RetimeSlotRange struct {
	ProviderID      string    `json:"provider_id" validate:"required,object_id"`
	InstitutionID   string    `json:"institution_id" validate:"required,object_id"`
	OldStart        time.Time `json:"old_start" validate:"required"`
	OldEnd          time.Time `json:"old_end" validate:"required"`
	NewStart        time.Time `json:"new_start" validate:"required"`
	NewEnd          time.Time `json:"new_end" validate:"required"`
	IntervalMinutes int       `json:"interval_minutes" validate:"required,min=5,max=480"`
}

type BookVisit struct {
	SlotID  string `json:"slot_id" validate:"required,object_id"`
	Remarks string `json:"remarks" validate:"max=500"`
}

type RescheduleVisit struct {
	NewSlotID string `json:"new_slot_id" validate:"required,object_id"`
}

type VisitCode struct {
	Type  string `json:"type" validate:"required,oneof=prescription referral"`
	Value string `json:"value" validate:"required,max=200"`
}

type CompleteVisit struct {
	Codes []VisitCode `json:"codes" validate:"dive"`
	Note  string      `json:"note" validate:"max=2000"`
}

type SubmitReview struct {
	SubjectID   string  `json:"subject_id" validate:"required,object_id"`
	SubjectType string  `json:"subject_type" validate:"required,oneof=provider institution"`
	Value       float64 `json:"value" validate:"required,rating_scale"`
}

type UpdateReview struct {
	Value float64 `json:"value" validate:"required,rating_scale"`
}
