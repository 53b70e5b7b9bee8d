// Package config defines the marbles tool configuration and how it is loaded.
package config

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Format selects how results are printed: text or json.
	Format string `koanf:"format"`

	// MetricsFile, when set, receives a Prometheus text exposition of the
	// operator runs after each command.
	MetricsFile string `koanf:"metrics_file"`

	// RenderWidth is the number of columns spanning the time axis.
	RenderWidth int `koanf:"render_width"`

	// HistoryLimit bounds the revisions kept by a preview sandbox.
	HistoryLimit int `koanf:"history_limit"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		Format:       FormatText,
		RenderWidth:  41,
		HistoryLimit: 100,
	}
}
