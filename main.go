package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"finsight/internal/chart"
	"finsight/internal/config"
	"finsight/internal/content"
	"finsight/internal/ratios"
	"finsight/ui/tui/state"
)

var version = content.Version

// Exit codes for structured error reporting.
const (
	ExitSuccess    = 0
	ExitInternal   = 1
	ExitInvalidArg = 2
	ExitNotFound   = 3
)

func main() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(classifyError(err))
	}
}

func classifyError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, fs.ErrNotExist) {
		return ExitNotFound
	}

	var ce *config.ConfigError
	if errors.As(err, &ce) ||
		errors.Is(err, state.ErrInvalidPage) ||
		errors.Is(err, content.ErrInvalidContextMode) ||
		errors.Is(err, ratios.ErrInvalidStatus) ||
		errors.Is(err, chart.ErrInvalidInput) {
		return ExitInvalidArg
	}

	msg := strings.ToLower(err.Error())

	if strings.Contains(msg, "does not exist") ||
		strings.Contains(msg, "no such file") {
		return ExitNotFound
	}

	if strings.Contains(msg, "required") ||
		strings.Contains(msg, "invalid") ||
		strings.Contains(msg, "must be") ||
		strings.Contains(msg, "must not") ||
		strings.Contains(msg, "expected") ||
		strings.Contains(msg, "unsupported") {
		return ExitInvalidArg
	}

	return ExitInternal
}
