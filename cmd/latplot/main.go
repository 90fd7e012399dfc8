package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lockbench/latplot/internal/config"
	"github.com/lockbench/latplot/internal/output"
	"github.com/lockbench/latplot/internal/report"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	loader := config.NewLoader()
	cfg, err := loader.Load(args)
	if err != nil {
		if errors.Is(err, config.ErrHelpRequested) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	result, err := report.NewGenerator(cfg).Run()
	if err != nil {
		return err
	}

	if cfg.JSONSummary {
		return output.PrintJSONSummary(os.Stdout, result)
	}
	output.PrintSummary(os.Stdout, result)
	return nil
}
