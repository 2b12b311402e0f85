package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jovian/orrery"
)

// loadConfig returns the default layout constants overlaid with those set in the TOML file, if any.
func loadConfig(filename string) (orrery.Config, error) {
	cfg := orrery.DefaultConfig()
	if filename == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(filename, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", filename, err)
	}
	if undecoded := md.Undecoded(); 0 < len(undecoded) {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return cfg, fmt.Errorf("%s: unknown keys %s", filename, strings.Join(keys, ", "))
	}
	return cfg, nil
}
