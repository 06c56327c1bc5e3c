package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingCallerIDKey       = "caller_id"
	LoggingSlotIDKey         = "slot_id"
	LoggingVisitIDKey        = "visit_id"
	LoggingOwnerIDKey        = "owner_id"
	LoggingProviderIDKey     = "provider_id"
	LoggingInstitutionIDKey  = "institution_id"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
)
