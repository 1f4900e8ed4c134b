package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// LockMode selects how concurrent writers of one cache directory are handled.
type LockMode string

const (
	// LockSingleWriter assumes a single writing process. The last manifest write wins.
	LockSingleWriter LockMode = "single-writer"
	// LockLocked takes an advisory lock around reload, merge and save of the manifest.
	LockLocked LockMode = "locked"
)

// ParseLockMode validates a lock mode name. An empty name selects LockSingleWriter.
func ParseLockMode(name string) (LockMode, error) {
	switch m := LockMode(strings.ToLower(strings.TrimSpace(name))); m {
	case "":
		return LockSingleWriter, nil
	case LockSingleWriter, LockLocked:
		return m, nil
	default:
		return "", InvalidValue("lock", name)
	}
}

// Validation selects what makes a cache entry stale.
type Validation string

const (
	// ValidateMtime compares modification times only.
	ValidateMtime Validation = "mtime"
	// ValidateContent compares modification times and content digests.
	ValidateContent Validation = "content"
)

// ParseValidation validates a validation mode name. An empty name selects ValidateMtime.
func ParseValidation(name string) (Validation, error) {
	switch v := Validation(strings.ToLower(strings.TrimSpace(name))); v {
	case "":
		return ValidateMtime, nil
	case ValidateMtime, ValidateContent:
		return v, nil
	default:
		return "", InvalidValue("validation", name)
	}
}

// LogFormat selects the log output format.
type LogFormat string

const (
	// LogPretty is colored human-readable output.
	LogPretty LogFormat = "pretty"
	// LogJSON is one JSON object per record.
	LogJSON LogFormat = "json"
)

// Config is the resolved configuration of the cache.
type Config struct {
	// Root is the directory under which cache directories are created.
	Root       string
	Lock       LockMode
	Encoding   Encoding
	Validation Validation
	LogLevel   string
	LogFormat  LogFormat
}

// ParseLogFormat validates a log format name. An empty name selects LogPretty.
func ParseLogFormat(name string) (LogFormat, error) {
	switch f := LogFormat(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return LogPretty, nil
	case LogPretty, LogJSON:
		return f, nil
	default:
		return "", InvalidValue("log_format", name)
	}
}

// InvalidValue reports an unrecognized value of a configuration field.
// The result matches ErrInvalidConfig.
func InvalidValue(field, value string) error {
	return zerr.With(zerr.Wrap(ErrInvalidConfig, fmt.Sprintf("invalid %s %q", field, value)), field, value)
}
