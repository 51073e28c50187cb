package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDataURL sets the URL of the dog names CSV file.
func OptDataURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("Data URL", s) {
			c.Data.URL = s
		}
	}
}

// OptImageListURL sets the URL that lists available dog pictures.
func OptImageListURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("Image List URL", s) {
			c.Image.ListURL = s
		}
	}
}

// OptImageBaseURL sets the URL prefix for picture downloads.
// A trailing slash is removed.
func OptImageBaseURL(s string) Option {
	s = strings.TrimRight(strings.TrimSpace(s), "/")
	return func(c *Config) {
		if isValidURL("Image Base URL", s) {
			c.Image.BaseURL = s
		}
	}
}

// OptImageSuffixes sets the allow-list of picture extensions.
// Suffixes are lower-cased and get a leading dot if it is missing.
func OptImageSuffixes(ss []string) Option {
	var res []string
	for _, v := range ss {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if !strings.HasPrefix(v, ".") {
			v = "." + v
		}
		res = append(res, v)
	}
	return func(c *Config) {
		if isValidSlice("Image Suffixes", res) {
			c.Image.Suffixes = res
		}
	}
}

// OptTimeout sets the number of seconds allowed for each network call.
func OptTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("Timeout", i) {
			c.Timeout = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the user's home directory.
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

// OptYear limits commands to one record year.
// Runtime-only field - not in ToOptions().
func OptYear(i int) Option {
	return func(c *Config) {
		if isValidInt("Year", i) {
			c.Year = i
		}
	}
}

// OptOutputDir sets the directory for downloaded pictures.
// Runtime-only field - not in ToOptions().
func OptOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Directory", s) {
			c.OutputDir = s
		}
	}
}

// OptFormat sets the output format.
// Valid values: "table", "json".
// Runtime-only field - not in ToOptions().
func OptFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Format", s) {
			c.Format = s
		}
	}
}

// OptWithProgress toggles the download progress bar.
// Runtime-only field - not in ToOptions().
func OptWithProgress(b bool) Option {
	return func(c *Config) {
		c.WithProgress = b
	}
}

// OptWithOpen toggles opening downloaded pictures.
// Runtime-only field - not in ToOptions().
func OptWithOpen(b bool) Option {
	return func(c *Config) {
		c.WithOpen = b
	}
}
