// Package config provides YAML-based platform configuration for ink-soccer.
// It covers presentation and hosting settings only: the match rules are
// fixed constants in the game package and are deliberately not configurable.
package config

// Config is the top-level platform configuration.
type Config struct {
	Tick    TickConfig    `yaml:"tick"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// TickConfig controls simulation pacing.
type TickConfig struct {
	Rate int `yaml:"rate"` // simulation ticks per second
}

// DisplayConfig controls optional presentation elements.
type DisplayConfig struct {
	ShowBlockZones bool `yaml:"show_block_zones"` // shade the goal-approach zones
	ShowHints      bool `yaml:"show_hints"`       // control hints footer
	Bell           bool `yaml:"bell"`             // terminal bell on cues
}

// StorageConfig controls session result persistence.
type StorageConfig struct {
	Path string `yaml:"path"` // SQLite database path, ~ expands to home
}

// SSHConfig controls the remote-play server.
type SSHConfig struct {
	Address         string `yaml:"address"`
	HostKeyPath     string `yaml:"host_key_path"` // empty: ~/.inksoccer/host_key
	IdleTimeoutMins int    `yaml:"idle_timeout_mins"`
}
