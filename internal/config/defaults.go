package config

import "time"

// Default values applied to any Config field left unset by the file and
// environment.  Dashboard defaults reproduce the original study's text.
const (
	DefaultServerHost      = "0.0.0.0"
	DefaultServerPort      = 8080
	DefaultServerMode      = "release"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultDatasetPath   = "data/OpportunityCanvas.csv"
	DefaultWatchDebounce = 500 * time.Millisecond

	DefaultDashboardTitle       = "Opportunity Canvas - Thumbnail Findings 3D Plot"
	DefaultDashboardTheme       = "Theme: AI in Healthcare"
	DefaultDashboardOpportunity = "Opportunity: Leverage AI (particularly agentic systems) in the healthcare industry, " +
		"to enhance healthcare efficiency, reduce costs, and improve outcomes for " +
		"core stakeholders in this space (patients, providers, and insurers)."
	DefaultDashboardAuthor = "Camila Cruz"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMetricsPath = "/metrics"
)

// ApplyDefaults fills in zero-valued fields of cfg with platform defaults.
// It never overwrites a value the operator set explicitly.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultServerHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = DefaultDatasetPath
	}
	if cfg.Dataset.WatchDebounce == 0 {
		cfg.Dataset.WatchDebounce = DefaultWatchDebounce
	}

	if cfg.Dashboard.Title == "" {
		cfg.Dashboard.Title = DefaultDashboardTitle
	}
	if cfg.Dashboard.Theme == "" {
		cfg.Dashboard.Theme = DefaultDashboardTheme
	}
	if cfg.Dashboard.Opportunity == "" {
		cfg.Dashboard.Opportunity = DefaultDashboardOpportunity
	}
	if cfg.Dashboard.Author == "" {
		cfg.Dashboard.Author = DefaultDashboardAuthor
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
}

// NewDefaultConfig returns a Config populated entirely from defaults, with
// metrics enabled.  Used when no config file is present.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Metrics.Enabled = true
	cfg.Dataset.Watch = true
	ApplyDefaults(cfg)
	return cfg
}
