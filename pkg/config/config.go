// Package config provides configuration management for wuff.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Data: url
//   - Image: list_url, base_url, suffixes
//   - Log: level, format, destination
//   - General: timeout
//
// Runtime-only fields (CLI flags only):
//   - Year, OutputDir, Format, WithProgress, WithOpen (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use WUFF_ prefix with underscores for nesting:
//
//	WUFF_DATA_URL=https://example.org/dogs.csv
//	WUFF_IMAGE_LIST_URL=https://random.dog/doggos
//	WUFF_IMAGE_SUFFIXES=.png,.jpg
//	WUFF_TIMEOUT=5
//	WUFF_LOG_LEVEL=info
package config

// Config represents the complete wuff configuration.
type Config struct {
	// Data contains settings of the dog names dataset.
	Data DataConfig `mapstructure:"data" yaml:"data"`

	// Image contains settings of the dog pictures service.
	Image ImageConfig `mapstructure:"image" yaml:"image"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Timeout is the number of seconds each network call may take.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`

	// Year limits all commands to one record year. Zero means
	// that all years are used.
	Year int `mapstructure:"-" yaml:"-"`

	// OutputDir is the directory where made up dogs save their pictures.
	OutputDir string `mapstructure:"-" yaml:"-"`

	// Format of the output, 'table' or 'json'.
	Format string `mapstructure:"-" yaml:"-"`

	// WithProgress shows a progress bar during picture downloads.
	WithProgress bool `mapstructure:"-" yaml:"-"`

	// WithOpen opens a downloaded picture with the default viewer.
	WithOpen bool `mapstructure:"-" yaml:"-"`
}

// DataConfig describes where the dog names dataset is published.
type DataConfig struct {
	// URL of the CSV file with registered dog names.
	URL string `mapstructure:"url" yaml:"url"`
}

// ImageConfig describes the service that provides dog pictures.
type ImageConfig struct {
	// ListURL returns a JSON array of picture paths relative to BaseURL.
	ListURL string `mapstructure:"list_url" yaml:"list_url"`

	// BaseURL is prepended to a relative picture path for download.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Suffixes is the allow-list of picture file extensions.
	// Each suffix is lower case and starts with a dot.
	Suffixes []string `mapstructure:"suffixes" yaml:"suffixes"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Data: DataConfig{
			URL: "https://data.stadt-zuerich.ch/dataset/" +
				"sid_stapo_hundenamen_od1002/download/KUL100OD1002.csv",
		},
		Image: ImageConfig{
			ListURL:  "https://random.dog/doggos",
			BaseURL:  "https://random.dog",
			Suffixes: []string{".png", ".jpg", ".jpeg"},
		},
		Log: LogConfig{
			Format:      "text",
			Level:       "info",
			Destination: "file",
		},
		Timeout:      5,
		Format:       "table",
		OutputDir:    ".",
		WithProgress: true,
		WithOpen:     true,
	}

	return res
}
