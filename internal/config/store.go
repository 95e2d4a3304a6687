package config

// StoreConfig controls how status is evaluated for the store.
type StoreConfig struct {
	Timezone           string
	ClosingSoonMinutes int
	WindowDays         int // default hours-table length, 1..14
}

func loadStore() StoreConfig {
	return StoreConfig{
		Timezone:           envOrDefault(envStoreTimezone, defaultStoreTimezone),
		ClosingSoonMinutes: boundedIntEnvOrDefault(envClosingSoon, defaultClosingSoon, maxClosingSoon),
		WindowDays:         boundedIntEnvOrDefault(envWindowDays, defaultWindowDays, maxWindowDays),
	}
}
