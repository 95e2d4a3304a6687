package config

import "strings"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string // host:port, scheme stripped
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	endpoint, insecure := otlpEndpoint(
		strings.TrimSpace(envOrDefault(envOtelEndpoint, "")),
		boolEnvOrDefault(envOtelInsecure, true),
	)
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         strings.TrimPrefix(envOrDefault(envMetricsPort, defaultMetricsPort), ":"),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpEndpoint: endpoint,
		OtlpInsecure: insecure,
	}
}

// otlpEndpoint accepts either host:port or a URL. An explicit scheme decides transport security.
func otlpEndpoint(raw string, insecure bool) (string, bool) {
	switch {
	case strings.HasPrefix(raw, "https://"):
		raw, insecure = strings.TrimPrefix(raw, "https://"), false
	case strings.HasPrefix(raw, "http://"):
		raw, insecure = strings.TrimPrefix(raw, "http://"), true
	}
	return strings.TrimSuffix(raw, "/"), insecure
}
