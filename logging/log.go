// Package logging is the ambient logging seam shared by every package
// in this module. It wraps github.com/araddon/gou behind a
// package-global default rather than threading a logger value through
// every call.
package logging

import (
	u "github.com/araddon/gou"
)

// Logger is the minimal structured-logging surface this module needs.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type gouLogger struct{}

func (gouLogger) Debugf(format string, args ...interface{}) { u.Debugf(format, args...) }
func (gouLogger) Infof(format string, args ...interface{})  { u.Infof(format, args...) }
func (gouLogger) Warnf(format string, args ...interface{})  { u.Warnf(format, args...) }
func (gouLogger) Errorf(format string, args ...interface{}) { u.Errorf(format, args...) }

// Default is the package-wide logger every package falls back to.
// Swappable by an embedder without plumbing a Logger through every
// exported function. The CLI's -config logLevel does not swap it; it
// only adjusts gou's level through SetLevel below.
var Default Logger = gouLogger{}

// Level names accepted by SetLevel, mirroring gou's own level set
// ("debug", "info", "warn", "error").
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// SetLevel configures gou's global log level from a config-file-style
// name. Unset/unrecognized names are left to gou's own default
// handling rather than treated as fatal here.
func SetLevel(name string) {
	u.SetupLogging(name)
}
