package constvars

// Client-facing messages. Kept deliberately vague for anything that is not the
// caller's fault.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please try again"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again"

	ErrClientSlotNotFound         = "The requested slot does not exist"
	ErrClientSlotAlreadyBooked    = "The slot has already been booked"
	ErrClientSlotOverlaps         = "The requested time overlaps an existing slot"
	ErrClientSlotRangeMixed       = "The requested range spans more than one institution"
	ErrClientSlotRangeBooked      = "The requested range contains booked slots"
	ErrClientVisitNotFound        = "The requested visit does not exist"
	ErrClientVisitAlreadyClosed   = "The visit has already been completed or cancelled"
	ErrClientInvalidRatingValue   = "Rating must be between 1.0 and 5.0 in half-point steps"
	ErrClientReviewNotFound       = "The requested review does not exist"
	ErrClientAccountNotFound      = "The requested account does not exist"
	ErrClientInvalidIdentifier    = "The supplied identifier is not valid"
	ErrClientInvalidTimeRange     = "Start time must be before end time"
	ErrClientMissingTimeRange     = "Start and end time are required"
)

// Dev-facing messages, logged but never shown to clients in production.
const (
	ErrDevValidationFailed        = "request payload validation failed"
	ErrDevCannotParseJSON         = "failed to parse JSON payload"
	ErrDevCannotParseTime         = "failed to parse time value"
	ErrDevMissingRequestID        = "request id not found in request context"
	ErrDevMissingCallerID         = "caller id not found in request context"
	ErrDevAuthTokenMissing        = "authorization token missing from request"
	ErrDevAuthTokenInvalid        = "authorization token invalid or expired"
	ErrDevAuthPredicateFailed     = "authorization predicate failed"
	ErrDevAuthNonePassed          = "no authorization predicate passed in match-any chain"
	ErrDevInvalidEntityReference  = "caller or institution reference is not a valid identifier"
	ErrDevSlotNotFound            = "slot not found"
	ErrDevSlotAlreadyBooked       = "slot is already booked"
	ErrDevSlotOverlap             = "slot overlaps an existing slot for the provider"
	ErrDevSlotRangeMixed          = "slot range contains slots of another institution"
	ErrDevSlotRangeBooked         = "slot range contains booked slots"
	ErrDevSlotNotBooked           = "slot is not booked"
	ErrDevVisitNotFound           = "visit not found"
	ErrDevVisitAlreadyClosed      = "visit is already in a terminal state"
	ErrDevRatingOutOfScale        = "rating value outside the accepted scale"
	ErrDevRatingEditWithoutSample = "rating edit requested on an entity with zero ratings"
	ErrDevReviewNotFound          = "review not found"
	ErrDevAccountNotFound         = "account not found"

	ErrDevDBFailedToFindDocument    = "database failed to find document"
	ErrDevDBFailedToInsertDocument  = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "database failed to update document"
	ErrDevDBFailedToDeleteDocument  = "database failed to delete document"
	ErrDevDBFailedToIterateCursor   = "database failed to iterate cursor"
	ErrDevDBStringNotObjectID       = "string is not a valid object id"
	ErrDevDBTransactionFailed       = "database transaction failed"
	ErrDevRedisSetData              = "redis failed to set data"
	ErrDevRedisGetData              = "redis failed to get data"
	ErrDevRedisDeleteData           = "redis failed to delete data"
	ErrDevLockNotAcquired           = "lock not acquired"
	ErrDevLockNotOwned              = "lock not owned by this client"
	ErrDevNotifyPublishFailed       = "failed to publish notification message"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevServerProcess             = "server failed to process request"
)
