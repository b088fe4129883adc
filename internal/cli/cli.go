// Package cli parses the riskpath command line into a Config.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"github.com/katalvlaran/riskpath/dijkstra"
	"github.com/katalvlaran/riskpath/internal/config"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the parsed command line.
type Config struct {
	Jobs      []config.Job
	Workers   int
	LogFormat string
	LogLevel  string
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("riskpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
riskpath - lowest total risk across a cave risk map.

Usage:
  riskpath [options] [INPUT]

Without -config, two jobs run on INPUT: "part1" on the map as read and
"part2" on the map expanded by -tiles.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "input.txt", "Path to the risk map.")
	tilesFlag := flagSet.String("tiles", "5x5", "Tile factor (RxC) for the expanded job.")
	configFlag := flagSet.String("config", "", "Path to an HCL job file. Overrides -input and -tiles.")
	memoryFlag := flagSet.String("memory", "dense", "Solver bookkeeping: 'dense' or 'sparse'.")
	workersFlag := flagSet.Int("workers", runtime.NumCPU(), "Maximum number of jobs solved concurrently.")
	logFormatFlag := flagSet.String("log-format", "auto", "Log output format. Options: 'auto', 'json' or 'console'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := &Config{
		Workers:   *workersFlag,
		LogFormat: *logFormatFlag,
		LogLevel:  *logLevelFlag,
	}

	if *configFlag != "" {
		jobs, err := config.LoadFile(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg.Jobs = jobs
		return cfg, false, nil
	}

	input := *inputFlag
	if flagSet.NArg() > 0 {
		input = flagSet.Arg(0)
	}
	rows, cols, err := config.ParseTiles(*tilesFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	mode, err := dijkstra.ParseMemoryMode(*memoryFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	cfg.Jobs = config.Defaults(input, rows, cols, mode)

	return cfg, false, nil
}
