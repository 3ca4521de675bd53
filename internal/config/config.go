// Package config loads notsure's YAML configuration: viewer settings, the
// run history database, the SSH viewer server and logging.
package config

import (
	"fmt"
	"time"
)

// Config is the full application configuration.
type Config struct {
	Viewer  ViewerConfig  `yaml:"viewer"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
	Log     LogConfig     `yaml:"log"`
}

// ViewerConfig controls the interactive scene viewer.
type ViewerConfig struct {
	Scale      float32 `yaml:"scale"`       // Terminal cells per world unit
	Step       float32 `yaml:"step"`        // World units moved per key press
	ClearColor string  `yaml:"clear_color"` // Background color
	Probe      string  `yaml:"probe"`       // Probe shown on open
}

// StorageConfig locates the run history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig configures the SSH viewer server.
type SSHConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string `yaml:"address"`

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.notsure/host_key.
	HostKeyPath string `yaml:"host_key_path"`

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig sets the log level name (debug, info, warn, error).
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate reports settings the viewer cannot work with.
func (c Config) Validate() error {
	if c.Viewer.Scale <= 0 {
		return fmt.Errorf("config: viewer.scale must be positive, got %g", c.Viewer.Scale)
	}
	if c.Viewer.Step <= 0 {
		return fmt.Errorf("config: viewer.step must be positive, got %g", c.Viewer.Step)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("config: storage.db_path is empty")
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: ssh.idle_timeout must not be negative")
	}
	return nil
}
