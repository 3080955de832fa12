package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the lrplot configuration file
// (~/.config/lrplot/config.yaml). Numeric fields are pointers so we can
// distinguish "not set" from zero values.
type Config struct {
	LearningRate *float64 `yaml:"learning_rate"`
	LREnd        *float64 `yaml:"lr_end"`
	Steps        *int64   `yaml:"steps"`
	Warmup       *int64   `yaml:"warmup"`
	DPI          *int64   `yaml:"dpi"`
	LogScale     string   `yaml:"log_scale"`
	Notation     string   `yaml:"notation"`

	// OutputDir is where auto-named charts land when -o is not given.
	OutputDir string `yaml:"output_dir"`

	ServerAddress string `yaml:"server_address"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lrplot", "config.yaml")
}

// applyPlotConfig applies config file defaults to the plot flags when the
// corresponding CLI flag was not explicitly set.
func applyPlotConfig(c *cli.Command, cfg Config) {
	if cfg.LearningRate != nil && !anySet(c, "learning-rate", "lr") {
		initialLR = *cfg.LearningRate
	}
	if cfg.LREnd != nil && !anySet(c, "lr-end", "lre") {
		finalLR = *cfg.LREnd
	}
	if cfg.Steps != nil && !anySet(c, "steps", "s") {
		steps = *cfg.Steps
	}
	if cfg.Warmup != nil && !anySet(c, "warmup", "w") {
		warmup = *cfg.Warmup
	}
	if cfg.DPI != nil && !anySet(c, "dpi") {
		dpi = *cfg.DPI
	}
	if cfg.LogScale != "" && !anySet(c, "log-scale", "l") {
		logScale = cfg.LogScale
	}
	if cfg.Notation != "" && !anySet(c, "notation", "n") {
		notation = cfg.Notation
	}
	applyLoggingConfig(c, cfg)
}

// applyServeConfig applies config file defaults to the serve command.
func applyServeConfig(c *cli.Command, cfg Config, addr *string) {
	if cfg.ServerAddress != "" && !anySet(c, "addr") {
		*addr = cfg.ServerAddress
	}
	applyLoggingConfig(c, cfg)
}

func applyLoggingConfig(c *cli.Command, cfg Config) {
	if cfg.LogLevel != "" && !anySet(c, "log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !anySet(c, "log-format") {
		logFormat = cfg.LogFormat
	}
}

func anySet(c *cli.Command, names ...string) bool {
	for _, n := range names {
		if c.IsSet(n) {
			return true
		}
	}
	return false
}

// LoadConfig reads the config file. Returns a zero Config if the file
// doesn't exist or cannot be parsed.
func LoadConfig() Config {
	path := configPath()
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}
