// Command polycalc evaluates a YAML worksheet of integer polynomial
// operations and prints every named result.
//
// Usage:
//
//	polycalc -worksheet sheet.yaml [flags]
//
// Flags:
//
//	-worksheet  Path of the worksheet to evaluate
//	-format     Output format: text, latex, repr, json, msgpack (default: text)
//	-verbosity  Log level 0-5 (default: 3)
//	-workers    Goroutines used by product steps, 0 for GOMAXPROCS
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the actual entry point, returning an exit code. Accepts CLI
// arguments (without the program name) so it can be tested in isolation.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, exit, code := parseFlags(args, stderr)
	if exit {
		return code
	}

	log.SetOutput(stderr)
	log.SetLevel(cfg.LogLevel())

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Error("Invalid configuration")
		return 1
	}

	sheet, err := LoadWorksheet(cfg.Worksheet)
	if err != nil {
		log.WithError(err).WithField("worksheet", cfg.Worksheet).Error("Failed to load worksheet")
		return 1
	}
	log.WithFields(log.Fields{
		"worksheet":   cfg.Worksheet,
		"polynomials": len(sheet.Polynomials),
		"steps":       len(sheet.Steps),
	}).Info("Evaluating worksheet")

	results, err := sheet.Evaluate(cfg.Workers)
	if err != nil {
		log.WithError(err).Error("Worksheet evaluation failed")
		return 1
	}

	for _, result := range results {
		line, err := result.Format(cfg.Format)
		if err != nil {
			log.WithError(err).WithField("step", result.Name).Error("Failed to format result")
			return 1
		}
		fmt.Fprintf(stdout, "%s = %s\n", result.Name, line)
	}
	return 0
}

// parseFlags parses CLI arguments into a Config. Returns the config, whether
// the caller should exit immediately, and the exit code.
func parseFlags(args []string, stderr io.Writer) (Config, bool, int) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("polycalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Worksheet, "worksheet", cfg.Worksheet, "path of the worksheet to evaluate")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: text, latex, repr, json, msgpack")
	fs.IntVar(&cfg.Verbosity, "verbosity", cfg.Verbosity, "log level 0-5")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines used by product steps, 0 for GOMAXPROCS")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, true, 0
		}
		return cfg, true, 2
	}
	if fs.NArg() > 0 && cfg.Worksheet == "" {
		cfg.Worksheet = fs.Arg(0)
	}
	return cfg, false, 0
}
