package main

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

var theLog = newLogger(false)

// newLogger returns a slog logger writing to stderr through a
// charmbracelet handler. Only warnings and errors are shown unless
// verbose is set.
func newLogger(verbose bool) *slog.Logger {
	h := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "snbt",
		Level:  log.WarnLevel,
	})
	if verbose {
		h.SetLevel(log.DebugLevel)
		h.SetReportTimestamp(true)
	}
	return slog.New(h)
}
