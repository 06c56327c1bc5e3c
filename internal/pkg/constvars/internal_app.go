package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
	CONTEXT_CALLER_ID_KEY            contextKey = "caller_id"
)

const (
	MongoCollectionSlots         = "slots"
	MongoCollectionVisits        = "visits"
	MongoCollectionAccounts      = "accounts"
	MongoCollectionNotifications = "notifications"
	MongoCollectionReviews       = "reviews"
)

const (
	ResponseUnknown = "unknown"
)

// Reminder defaults; overridable via InternalConfig.
const (
	DefaultReminderHourLocal     = 9
	DefaultReminderRetentionDays = 30
	DefaultReminderSweepCronSpec = "* * * * *"
)
