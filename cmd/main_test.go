package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/camel-cards/domain/camel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = "32T3K 765\nT55J5 684\nKK677 28\nKTJJT 220\nQQQJA 483\n"

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunExample(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, config{Input: writeInput(t, example)}, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 6440\nPart 2: 5905\n", out.String())
}

func TestRunVerbose(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	var out bytes.Buffer
	err := run(&out, config{Input: writeInput(t, example), Verbose: true}, discardLogger())
	require.NoError(t, err)
	s := out.String()
	assert.Contains(t, s, "standard")
	assert.Contains(t, s, "jokers")
	assert.Contains(t, s, "KTJJT")
	assert.Contains(t, s, "four of a kind")
	assert.Contains(t, s, "Total winnings: 5905")
	assert.Contains(t, s, "Part 1: 6440\nPart 2: 5905\n")
}

func TestRunLenientBid(t *testing.T) {
	var logs, out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	err := run(&out, config{Input: writeInput(t, "AAAAA x\n23456 10\n")}, logger)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 10\nPart 2: 10\n", out.String())
	assert.Contains(t, logs.String(), "line=1")
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, config{Input: filepath.Join(t.TempDir(), "nope.txt")}, discardLogger())
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, out.String())
}

func TestRunMalformedLine(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, config{Input: writeInput(t, "32T3K765\n")}, discardLogger())
	require.ErrorIs(t, err, camel.ErrMalformedLine)
	assert.Empty(t, out.String())
}

func TestRealMainLogsToStderr(t *testing.T) {
	withEnvFile(t, "")
	var stdout, stderr bytes.Buffer
	code := realMain([]string{"-input", writeInput(t, "AAAAA x\n23456 10\n")}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Equal(t, "Part 1: 10\nPart 2: 10\n", stdout.String())
	assert.Contains(t, stderr.String(), "bid is not a number")
}

func TestRealMainFailure(t *testing.T) {
	withEnvFile(t, "")
	var stdout, stderr bytes.Buffer
	code := realMain([]string{"-input", filepath.Join(t.TempDir(), "nope.txt")}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "failed to score hands")
}

func TestRealMainHelp(t *testing.T) {
	withEnvFile(t, "")
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, realMain([]string{"-h"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "-input")
	assert.NotContains(t, stderr.String(), "invalid configuration")

	stderr.Reset()
	assert.Equal(t, 2, realMain([]string{"-bogus"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "invalid configuration")
}
