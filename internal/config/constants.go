package config

import "time"

const (
	envPort           = "PORT"
	envReloadInterval = "RELOAD_INTERVAL"
	envAdminToken     = "ADMIN_TOKEN"
	envCalendarSource = "CALENDAR_PROVIDER"
	envCalendarFile   = "CALENDAR_FILE"
	envStoreTimezone  = "STORE_TIMEZONE"
	envClosingSoon    = "CLOSING_SOON_MINUTES"
	envWindowDays     = "SCHEDULE_WINDOW_DAYS"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envServiceVersion = "SERVICE_VERSION"

	defaultPort = "4000"
	// Calendar edits are rare; a minute keeps file changes and status transitions timely.
	defaultReloadInterval = Duration(time.Minute)
	defaultCalendarSource = "builtin"
	defaultCalendarFile   = "configs/store.yaml"
	defaultStoreTimezone  = "Australia/Brisbane"
	defaultClosingSoon    = 45
	maxClosingSoon        = 24 * 60
	defaultWindowDays     = 7
	maxWindowDays         = 14
	defaultMetricsPort    = "9090"
	defaultServiceName    = "store-status-service"
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
)
