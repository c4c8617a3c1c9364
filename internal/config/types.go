package config

// Config is the top-level aidetect configuration, corresponding to .aidetect.yml.
type Config struct {
	APIBase        string `yaml:"api_base" koanf:"api_base"`
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
	ReportsDir     string `yaml:"reports_dir" koanf:"reports_dir"`
	HistoryLimit   int    `yaml:"history_limit" koanf:"history_limit"`
}

// DefaultConfig returns a Config with sensible defaults. APIBase has no
// default: the backend URL must come from the config file, the wizard, or
// AIDETECT_API_BASE.
func DefaultConfig() *Config {
	return &Config{
		TimeoutSeconds: 60,
		ReportsDir:     "reports",
		HistoryLimit:   100,
	}
}
