package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotRepository = errors.New("not inside a git repository")
	ErrNonUTF8Output = errors.New("output is not valid UTF-8")
)

// IoError is a failed file or directory read.
type IoError struct {
	Op   string
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// EnvError is a missing environment variable.
type EnvError struct {
	Name string
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("environment variable %s is not set", e.Name)
}

// SubprocessError is a failed external command, either a non-zero exit or
// unusable output.
type SubprocessError struct {
	Args []string
	Err  error
}

func (e *SubprocessError) Error() string {
	return fmt.Sprintf("%s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *SubprocessError) Unwrap() error { return e.Err }
