package app

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ScenarioPath points at a scenario file or directory. Empty means
	// the built-in tour runs instead.
	ScenarioPath string

	LogFormat string
	LogLevel  string
}

// NewConfig fills the zero values of cfg with defaults.
func NewConfig(cfg Config) *Config {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg
}
