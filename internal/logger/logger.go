// SPDX-License-Identifier: MIT

// Package logger installs the process-wide go-logging backend used by the
// typereduce command and the batch package.
package logger

import (
	"io"

	"github.com/op/go-logging"
)

const (
	// LogFormat is the line layout written to the configured writer.
	LogFormat = "%{time:2006-01-02 15:04:05.000} [%{level:.4s}] %{module} %{shortfile} %{message}"

	// DefaultLevel keeps library chatter off the console unless asked for.
	DefaultLevel = "WARNING"
)

// InitLog routes every module logger to w at the given level name
// ("DEBUG", "INFO", "WARNING", ...; case-insensitive). An empty level
// means DefaultLevel.
func InitLog(w io.Writer, levelString string) error {
	if levelString == "" {
		levelString = DefaultLevel
	}
	level, err := logging.LogLevel(levelString)
	if err != nil {
		return err
	}

	backend := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(w, "", 0),
			logging.MustStringFormatter(LogFormat),
		),
	)
	backend.SetLevel(level, "")
	logging.SetBackend(backend)

	return nil
}
