// Command riskpath prints the lowest total risk of walking from the top-left
// to the bottom-right corner of a cave risk map, for the map as read and for
// the map expanded into a larger tile pattern.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/riskpath/internal/app"
	"github.com/katalvlaran/riskpath/internal/cli"
	"github.com/katalvlaran/riskpath/internal/logging"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the program for testing: results go to outW, logs to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := logging.New(logW, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	logger.Debug().Int("jobs", len(cfg.Jobs)).Int("workers", cfg.Workers).Msg("starting")

	results, err := app.Run(ctx, cfg.Jobs, cfg.Workers, logger)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintf(outW, "%s: %d\n", r.Job.Name, r.Cost)
	}

	return nil
}
