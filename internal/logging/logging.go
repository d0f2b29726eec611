// Package logging configures the shared logger for the CLI.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

func init() {
	logger.SetLevel(log.WarnLevel)
}

// SetDebug switches the shared logger between debug and warn level.
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
}

// SetOutput redirects log output. Mainly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debug logs at debug level with key-value pairs.
func Debug(msg string, kv ...any) {
	logger.Debug(msg, kv...)
}
