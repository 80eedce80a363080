package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultColumns   = 4
	DefaultIDFormat  = "uuid"
	DefaultLogDir    = "~/.todoboard"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultAltScreen = true
)

// Config holds the full configuration for todoboard.
type Config struct {
	// Board layout
	Columns   int  `toml:"columns"`
	AltScreen bool `toml:"alt_screen"`

	// Task id generator (uuid or ulid)
	IDFormat string `toml:"id_format"`

	// Logging configuration. An empty LogDir disables the log file.
	LogDir        string `toml:"log_dir"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Working directory (computed)
	ProjectRoot string `toml:"-"`
}

// WriteTOML writes the effective configuration as TOML.
func (c *Config) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
