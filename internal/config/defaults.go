package config

import (
	_ "embed"
)

//go:embed defaults/inksoccer.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration, used when the
// embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Tick: TickConfig{
			Rate: 60,
		},
		Display: DisplayConfig{
			ShowBlockZones: true,
			ShowHints:      true,
			Bell:           true,
		},
		Storage: StorageConfig{
			Path: "~/.inksoccer/sessions.db",
		},
		SSH: SSHConfig{
			Address:         ":23235",
			IdleTimeoutMins: 30,
		},
	}
}
