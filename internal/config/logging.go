package config

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level   string
	Format  string
	Version string
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:   envOrDefault(envLogLevel, defaultLogLevel),
		Format:  envOrDefault(envLogFormat, defaultLogFormat),
		Version: envOrDefault(envServiceVersion, ""),
	}
}
