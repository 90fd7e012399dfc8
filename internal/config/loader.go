package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Loader handles loading configuration from files and command-line arguments.
type Loader struct{}

// ErrHelpRequested is returned when the user requests help via --help flag.
var ErrHelpRequested = errors.New("help requested")

// NewLoader creates a new configuration Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses command-line arguments and an optional configuration file to
// produce a Config. Precedence: defaults, then config file, then flags that
// were set explicitly.
func (Loader) Load(args []string) (*Config, error) {
	cmd := newFlagCommand()
	if err := cmd.Flags().Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			displayHelp(cmd)
			return nil, ErrHelpRequested
		}
		return nil, err
	}

	flagSet := cmd.Flags()
	if helpFlag := flagSet.Lookup("help"); helpFlag != nil {
		if wantsHelp, err := strconv.ParseBool(helpFlag.Value.String()); err == nil && wantsHelp {
			displayHelp(cmd)
			return nil, ErrHelpRequested
		}
	}

	cfg := Default()

	if configPath := flagSet.Lookup("config").Value.String(); configPath != "" {
		cfgViper := viper.New()
		cfgViper.SetConfigFile(configPath)
		if err := cfgViper.ReadInConfig(); err != nil {
			return nil, err
		}
		if err := cfgViper.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", configPath, err)
		}
	}

	if err := applyFlagOverrides(cfg, flagSet); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFlagOverrides applies explicitly set flags on top of the Config.
func applyFlagOverrides(cfg *Config, flags *pflag.FlagSet) error {
	if f := flags.Lookup("data-dir"); f != nil && f.Changed {
		cfg.DataDir = f.Value.String()
	}
	if f := flags.Lookup("out-dir"); f != nil && f.Changed {
		cfg.OutDir = f.Value.String()
	}
	if f := flags.Lookup("json-summary"); f != nil && f.Changed {
		val, err := strconv.ParseBool(f.Value.String())
		if err != nil {
			return fmt.Errorf("json-summary: %w", err)
		}
		cfg.JSONSummary = val
	}
	return nil
}
