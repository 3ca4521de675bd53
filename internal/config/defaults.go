package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/notsure.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Viewer: ViewerConfig{
			Scale:      2,
			Step:       0.5,
			ClearColor: "#101418",
			Probe:      "rays",
		},
		Storage: StorageConfig{
			DBPath: "~/.notsure/history.db",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
