package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	DataPath      string  `yaml:"data"`
	Delimiter     string  `yaml:"delimiter"`
	LabelPosition string  `yaml:"label_position"`
	SkipHeader    bool    `yaml:"skip_header"`
	Mode          string  `yaml:"mode"`
	Hidden        []int   `yaml:"hidden"`
	Epochs        int     `yaml:"epochs"`
	LearningRate  float64 `yaml:"learning_rate"`
	Normalization string  `yaml:"normalization"`
	SplitPercent  int     `yaml:"split_percent"`
	Folds         int     `yaml:"folds"`
	Seed          int64   `yaml:"seed"`
	LogEvery      int     `yaml:"log_every"`
	ModelOut      string  `yaml:"model_out"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	DataPath     string
	Mode         string
	Epochs       int
	SplitPercent int
	Folds        int
	Seed         int64
	LogEvery     int
}

// Load reads and validates a Config from YAML.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := parseYAML(f)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.DataPath != "" {
		c.DataPath = o.DataPath
	}
	if o.Mode != "" {
		c.Mode = o.Mode
	}
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.SplitPercent > 0 {
		c.SplitPercent = o.SplitPercent
	}
	if o.Folds > 0 {
		c.Folds = o.Folds
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
}

// Validate verifies the config is runnable and fills defaults.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.DataPath == "" {
		return errors.New("data must point to a delimited dataset file")
	}
	if c.Delimiter == "" {
		c.Delimiter = ","
	}
	if c.LabelPosition == "" {
		c.LabelPosition = "last"
	}
	if c.LabelPosition != "first" && c.LabelPosition != "last" {
		return fmt.Errorf("label_position must be first or last (got %q)", c.LabelPosition)
	}
	if c.Normalization == "" {
		c.Normalization = "minmax"
	}
	if len(c.Hidden) == 0 {
		return errors.New("hidden must name at least one hidden layer width")
	}
	for _, width := range c.Hidden {
		if width <= 0 {
			return fmt.Errorf("hidden layer widths must be > 0 (got %d)", width)
		}
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if c.LearningRate < 0 {
		return fmt.Errorf("learning_rate must be >= 0 (got %f)", c.LearningRate)
	}
	switch c.Mode {
	case "split":
		if c.SplitPercent <= 0 || c.SplitPercent >= 100 {
			return fmt.Errorf("split_percent must be in (0,100) (got %d)", c.SplitPercent)
		}
	case "cv":
		if c.Folds < 2 {
			return fmt.Errorf("folds must be >= 2 for cross validation (got %d)", c.Folds)
		}
	default:
		return fmt.Errorf("mode must be split or cv (got %q)", c.Mode)
	}
	if c.LogEvery < 0 {
		return fmt.Errorf("log_every must be >= 0 (got %d)", c.LogEvery)
	}
	return nil
}

func parseYAML(r io.Reader) (*Config, error) {
	cfg := &Config{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: missing ':'", lineNo)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, "\"'")
		switch key {
		case "data":
			cfg.DataPath = value
		case "delimiter":
			cfg.Delimiter = value
		case "label_position":
			cfg.LabelPosition = value
		case "skip_header":
			v, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: skip_header: %w", lineNo, err)
			}
			cfg.SkipHeader = v
		case "mode":
			cfg.Mode = value
		case "hidden":
			widths, err := parseWidths(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: hidden: %w", lineNo, err)
			}
			cfg.Hidden = widths
		case "epochs":
			v, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: epochs: %w", lineNo, err)
			}
			cfg.Epochs = v
		case "learning_rate":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: learning_rate: %w", lineNo, err)
			}
			cfg.LearningRate = v
		case "normalization":
			cfg.Normalization = value
		case "split_percent":
			v, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: split_percent: %w", lineNo, err)
			}
			cfg.SplitPercent = v
		case "folds":
			v, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: folds: %w", lineNo, err)
			}
			cfg.Folds = v
		case "seed":
			v, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: seed: %w", lineNo, err)
			}
			cfg.Seed = v
		case "log_every":
			v, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: log_every: %w", lineNo, err)
			}
			cfg.LogEvery = v
		case "model_out":
			cfg.ModelOut = value
		default:
			return nil, fmt.Errorf("line %d: unknown key %s", lineNo, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseWidths(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	widths := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		widths = append(widths, v)
	}
	return widths, nil
}
