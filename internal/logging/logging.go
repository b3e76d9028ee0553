// SPDX-License-Identifier: MIT

// Package logging builds the logrus logger shared by the magicsquare binary
// and its consumers.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// TimestampFormat is the layout used for log timestamps.
const TimestampFormat = "2006-01-02 15:04:05"

// New returns a text logger writing to w at the named level
// (debug, info, warn, error). Unknown names fall back to info.
func New(level string, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: TimestampFormat,
	})
	logger.SetLevel(ParseLevel(level))

	return logger
}

// ParseLevel maps a level name onto a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Discard returns a logger that drops everything; handy for tests and for
// library callers that pass no logger.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}
