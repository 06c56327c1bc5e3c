package config

type InternalConfig struct {
	App App
	JWT JWT
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Timezone                 string
	EndpointPrefix           string
	MaxRequests              int
	ShutdownTimeoutInSeconds int

	// Reminder sweep settings.
	ReminderSweepCronSpec    string
	ReminderRetentionInDays  int
	ReminderHourLocal        int
	ReminderDispatchWindow   int // minutes on either side of the sweep instant

	// Slot lock TTL in seconds for booking critical sections.
	SlotLockTTLInSeconds int
}

type JWT struct {
	Secret string
}
