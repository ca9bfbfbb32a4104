package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spf13/cast"
)

// config is the CLI driver's optional YAML config: log level, a
// default -leaves-filter/-query pair, and a safety cap on the tick
// loop. Absence of -config uses the defaults set by defaultConfig
// below (info level, no filter, no query, 1000 iterations).
type config struct {
	LogLevel      string `yaml:"logLevel"`
	LeavesFilter  string `yaml:"leavesFilter"`
	Query         string `yaml:"query"`
	MaxIterations int    `yaml:"maxIterations"`
}

func defaultConfig() config {
	return config{LogLevel: "info", MaxIterations: 1000}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = defaultConfig().MaxIterations
	}
	return cfg, nil
}

// resolveMaxIterations lets a command-line flag override the config
// file's value. A malformed or non-positive override falls back to
// the config value rather than killing the run.
func resolveMaxIterations(cfg config, override string) int {
	if override == "" {
		return cfg.MaxIterations
	}
	n, err := cast.ToIntE(override)
	if err != nil || n <= 0 {
		return cfg.MaxIterations
	}
	return n
}
