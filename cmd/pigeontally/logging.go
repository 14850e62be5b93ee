package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// app carries the process-level dependencies commands run against.
type app struct {
	stdout io.Writer
	logger *log.Logger
}

// SetupLogger configures a stderr logger at the named level.
func SetupLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		Prefix:          "pigeontally",
		ReportTimestamp: lvl == log.DebugLevel,
	}), nil
}
