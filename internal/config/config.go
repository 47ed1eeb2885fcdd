// Package config loads the dwell configuration. A single optional field,
// read once at startup; the resulting delay is immutable for the process
// lifetime.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"hotcorner/internal/corner"
)

// DefaultPath is where the configuration is looked for when no -config flag
// is given.
const DefaultPath = "config.toml"

// Config is the on-disk shape: the dwell delay in milliseconds.
type Config struct {
	Delay *uint64 `toml:"delay"`
}

// Load reads the configuration at path. A missing file means defaults; a
// file that exists but cannot be read or parsed is a startup error, since
// the process must not run with a delay the user set but we cannot trust.
func Load(path string) (time.Duration, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return corner.DefaultDwell, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Delay == nil {
		return corner.DefaultDwell, nil
	}
	return time.Duration(*cfg.Delay) * time.Millisecond, nil
}
