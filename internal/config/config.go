package config

// Config holds runtime configuration for the server.
type Config struct {
	Port           string
	ReloadInterval Duration
	AdminToken     string
	Calendar       CalendarConfig
	Store          StoreConfig
	Metrics        MetricsConfig
	Logging        LoggingConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		ReloadInterval: durationEnvOrDefault(envReloadInterval, defaultReloadInterval),
		AdminToken:     envOrDefault(envAdminToken, ""),
		Calendar:       loadCalendar(),
		Store:          loadStore(),
		Metrics:        loadMetrics(),
		Logging:        loadLogging(),
	}
}
