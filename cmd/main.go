package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/camel-cards/domain/camel"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// newLogger builds a slog logger on a PTerm logger that writes to w.
func newLogger(w io.Writer) (*slog.Logger, *pterm.Logger) {
	plogger := pterm.DefaultLogger.WithWriter(w)
	return slog.New(pterm.NewSlogHandler(plogger)), plogger
}

// realMain runs the command and returns its exit status. Only the
// results go to stdout, logs and usage go to stderr.
func realMain(args []string, stdout, stderr io.Writer) int {
	logger, plogger := newLogger(stderr)

	cfg, err := loadConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return 2
	}
	if cfg.Verbose {
		plogger.Level = pterm.LogLevelDebug
	}

	if err := run(stdout, cfg, logger); err != nil {
		logger.Error("failed to score hands", "error", err)
		return 1
	}
	return 0
}

// run scores the hand list named by cfg under both rule modes and writes
// the two totals to w.
func run(w io.Writer, cfg config, logger *slog.Logger) error {
	logger.Debug("reading hands", "path", cfg.Input)
	res, err := camel.ParseFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", cfg.Input, err)
	}
	for _, line := range res.Lenient {
		logger.Warn("bid is not a number, counting it as zero", "path", cfg.Input, "line", line)
	}
	logger.Debug("hands parsed", "count", len(res.Hands))

	if cfg.Verbose {
		for _, rules := range []camel.Rules{camel.Standard, camel.Jokers} {
			if err := renderRanking(w, rules, camel.Rank(res.Hands, rules)); err != nil {
				return err
			}
		}
	}

	result := camel.Solve(res.Hands)
	if _, err := fmt.Fprintf(w, "Part 1: %d\nPart 2: %d\n", result.Standard, result.Jokers); err != nil {
		return err
	}
	return nil
}
