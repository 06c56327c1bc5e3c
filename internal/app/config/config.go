package config

import (
	"vitacare-service/internal/pkg/constvars"
	"vitacare-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "vitacare"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:              utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:              utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username:          utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password:          utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			NotificationQueue: utils.GetEnvString("RABBITMQ_NOTIFICATION_QUEUE", "notifications"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 15),
			ReminderSweepCronSpec:    utils.GetEnvString("REMINDER_SWEEP_CRON_SPEC", constvars.DefaultReminderSweepCronSpec),
			ReminderRetentionInDays:  utils.GetEnvInt("REMINDER_RETENTION_IN_DAYS", constvars.DefaultReminderRetentionDays),
			ReminderHourLocal:        utils.GetEnvInt("REMINDER_HOUR_LOCAL", constvars.DefaultReminderHourLocal),
			ReminderDispatchWindow:   utils.GetEnvInt("REMINDER_DISPATCH_WINDOW_IN_MINUTES", 1),
			SlotLockTTLInSeconds:     utils.GetEnvInt("SLOT_LOCK_TTL_IN_SECONDS", 30),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "change-me"),
		},
	}
}
