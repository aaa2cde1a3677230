package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envInput   = "CAMEL_INPUT"
	envVerbose = "CAMEL_VERBOSE"

	defaultInput = "data/input.txt"
)

// envFile is loaded into the environment when present.
var envFile = ".env"

type config struct {
	Input   string
	Verbose bool
}

// loadConfig resolves the configuration from flags, then the environment,
// then envFile, then defaults.
func loadConfig(args []string, stderr io.Writer) (config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	cfg := config{Input: defaultInput}
	if v, ok := os.LookupEnv(envInput); ok && v != "" {
		cfg.Input = v
	}
	if v, ok := os.LookupEnv(envVerbose); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return config{}, fmt.Errorf("%s: %w", envVerbose, err)
		}
		cfg.Verbose = b
	}

	fset := flag.NewFlagSet("camel", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.StringVar(&cfg.Input, "input", cfg.Input, "path of the hand list")
	fset.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print the ranking of every hand")
	if err := fset.Parse(args); err != nil {
		return config{}, err
	}
	if fset.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fset.Args())
	}
	return cfg, nil
}
