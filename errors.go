package rcut

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is returned by tokenizers that need the record to be valid
// UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// RangeError reports a malformed token of a range list.
type RangeError struct {
	Token string
	err   error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("unable to parse range '%s': %s", e.Token, e.err)
}

func (e *RangeError) Unwrap() error { return e.err }

// ConfigError reports an invalid or conflicting configuration option.
type ConfigError struct {
	Option string
	err    error
}

func configErrorf(option, format string, args ...any) *ConfigError {
	return &ConfigError{Option: option, err: fmt.Errorf(format, args...)}
}

func (e *ConfigError) Error() string {
	if e.Option == "" {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Option, e.err)
}

func (e *ConfigError) Unwrap() error { return e.err }

// EncodingError reports a record that had to be split as text but is not
// valid UTF-8. Such records are skipped.
type EncodingError struct {
	// 1-based record number, 0 if unknown
	Record int
	Mode   Mode
	err    error
}

func (e *EncodingError) Error() string {
	if e.Record == 0 {
		return fmt.Sprintf("%s split: %s", e.Mode.splitName(), e.err)
	}
	return fmt.Sprintf("record %d: %s split: %s", e.Record, e.Mode.splitName(), e.err)
}

func (e *EncodingError) Unwrap() error { return e.err }
