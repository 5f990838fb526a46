package batchpipe

import (
	"fmt"
	"strings"
)

// ConfigError is returned before any I/O when an option has the wrong shape.
type ConfigError struct {
	Option string
	Want   string
	Got    string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("the `%s` option should be %s, got %s", e.Option, e.Want, e.Got)
}

// FileError wraps a filesystem failure with the source file being handled.
type FileError struct {
	// Op is one of "read", "mkdir" or "write".
	Op     string
	Source string
	Err    error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to %s file: %v, with error: %v", e.Op, e.Source, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// RunError is what Run returns when one of its files fails. It carries the
// specifiers the run was started with.
type RunError struct {
	Specifiers []string
	Err        error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("error occurred when handling file: %s\n\n%v", strings.Join(e.Specifiers, ","), e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
