package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// config is the content of a configuration file:
//
//	[parse]
//	lenient = false
//
//	[mul]
//	workers = 4
//	threshold = 32
type config struct {
	Parse parseConfig `toml:"parse"`
	Mul   mulConfig   `toml:"mul"`
}

type parseConfig struct {
	Lenient bool `toml:"lenient"`
}

type mulConfig struct {
	// Workers is the number of goroutines used by a multiplication.
	Workers int `toml:"workers"`
	// Threshold is the number of segments both operands must have
	// before a multiplication is split across workers.
	Threshold int `toml:"threshold"`
}

func defaultConfig() config {
	return config{
		Mul: mulConfig{
			Workers:   1,
			Threshold: 32,
		},
	}
}

// loadConfig reads the configuration file at path.
// Settings missing from the file keep their default values.
// An empty path yields the default configuration.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if meta.IsDefined("mul", "workers") && cfg.Mul.Workers < 1 {
		return config{}, fmt.Errorf("%s: [mul].workers must be at least 1, got %v", path, cfg.Mul.Workers)
	}
	if meta.IsDefined("mul", "threshold") && cfg.Mul.Threshold < 2 {
		return config{}, fmt.Errorf("%s: [mul].threshold must be at least 2, got %v", path, cfg.Mul.Threshold)
	}
	return cfg, nil
}
