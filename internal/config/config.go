package config

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	DataFile string
	Log      LogConfig
	Metrics  MetricsConfig
}

// LogConfig selects the root logger's level and output format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		DataFile: envOrDefault(envDataFile, defaultDataFile),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(),
	}
}
