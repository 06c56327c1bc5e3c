package constvars

const (
	CreateSlotSuccessMessage          = "Successfully created slot"
	CreateRecurringSlotSuccessMessage = "Successfully created recurring slots"
	RetimeSlotRangeSuccessMessage     = "Successfully re-timed slot range"
	GetSlotsSuccessMessage            = "Successfully retrieved slots"
	BookVisitSuccessMessage           = "Successfully booked visit"
	CancelVisitSuccessMessage         = "Successfully cancelled visit"
	RescheduleVisitSuccessMessage     = "Successfully rescheduled visit"
	CompleteVisitSuccessMessage       = "Successfully completed visit"
	SubmitReviewSuccessMessage        = "Successfully submitted review"
	UpdateReviewSuccessMessage        = "Successfully updated review"
	DeleteReviewSuccessMessage        = "Successfully deleted review"
)
