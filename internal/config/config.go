package config

import (
	"fmt"
	"strings"
)

// Config describes one plotting run: where the sample files live, where the
// images go, and which metrics and primitives to compare.
type Config struct {
	DataDir     string      `mapstructure:"data_dir"`
	OutDir      string      `mapstructure:"out_dir"`
	JSONSummary bool        `mapstructure:"json_summary"`
	Metrics     []Metric    `mapstructure:"metrics"`
	Primitives  []Primitive `mapstructure:"primitives"`
}

// Metric is one measured operation with its histogram bucket range. The
// buckets span [BinStart, BinStop) in steps of BinStep, like a Python range.
type Metric struct {
	Name     string `mapstructure:"name"`
	BinStart int    `mapstructure:"bin_start"`
	BinStop  int    `mapstructure:"bin_stop"`
	BinStep  int    `mapstructure:"bin_step"`
}

// Primitive is one synchronization primitive under comparison: the sample
// file name stem, the legend label, and the series color.
type Primitive struct {
	Name  string `mapstructure:"name"`
	Label string `mapstructure:"label"`
	Color string `mapstructure:"color"`
}

// OutputFile returns the image file name for the metric.
func (m Metric) OutputFile() string {
	return "histogram." + m.Name + ".png"
}

// Default returns the configuration used when no flags or config file are
// given: six .dat files under ./target, two PNGs in the working directory,
// and the bucket ranges the lock benchmark has always been plotted with.
func Default() *Config {
	return &Config{
		DataDir: "target",
		OutDir:  ".",
		Metrics: []Metric{
			{Name: "read", BinStart: 150, BinStop: 200, BinStep: 2},
			{Name: "write", BinStart: 600, BinStop: 3750, BinStep: 40},
		},
		Primitives: []Primitive{
			{Name: "mutex", Label: "Mutex", Color: "green"},
			{Name: "rwlock", Label: "RwLock", Color: "blue"},
			{Name: "seqloq", Label: "Seqloq", Color: "red"},
		},
	}
}

// Validate checks the configuration for values that cannot produce a report.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data directory must not be empty")
	}
	if strings.TrimSpace(c.OutDir) == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if len(c.Metrics) == 0 {
		return fmt.Errorf("at least one metric is required")
	}
	if len(c.Primitives) == 0 {
		return fmt.Errorf("at least one primitive is required")
	}

	for _, m := range c.Metrics {
		if err := validateName("metric", m.Name); err != nil {
			return err
		}
		if m.BinStep <= 0 {
			return fmt.Errorf("metric %s: bin step must be positive, got %d", m.Name, m.BinStep)
		}
		if m.BinStart+m.BinStep >= m.BinStop {
			return fmt.Errorf("metric %s: bin range [%d, %d) with step %d has no buckets", m.Name, m.BinStart, m.BinStop, m.BinStep)
		}
	}

	for _, p := range c.Primitives {
		if err := validateName("primitive", p.Name); err != nil {
			return err
		}
		if strings.TrimSpace(p.Label) == "" {
			return fmt.Errorf("primitive %s: label must not be empty", p.Name)
		}
		if strings.TrimSpace(p.Color) == "" {
			return fmt.Errorf("primitive %s: color must not be empty", p.Name)
		}
	}

	return nil
}

// validateName rejects identifiers that would escape the data directory once
// interpolated into a file name.
func validateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s name must not be empty", kind)
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("%s name %q must not contain path separators", kind, name)
	}
	return nil
}
