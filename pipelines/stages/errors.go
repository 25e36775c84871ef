// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package stages

import "fmt"

// ErrReadFile is returned when file I/O operations fail.
type ErrReadFile struct {
	Op   string // read, stat
	Path string
	Err  error
}

func (e *ErrReadFile) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ErrReadFile) Unwrap() error {
	return e.Err
}

// ErrDatabase is returned when database operations fail.
type ErrDatabase struct {
	Op  string
	Err error
}

func (e *ErrDatabase) Error() string {
	return fmt.Sprintf("database %s: %v", e.Op, e.Err)
}

func (e *ErrDatabase) Unwrap() error {
	return e.Err
}

// ErrConfig is returned when the configuration can't be loaded.
type ErrConfig struct {
	Path string
	Err  error
}

func (e *ErrConfig) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ErrConfig) Unwrap() error {
	return e.Err
}

// ErrParseSyntax is returned when the cubes parser encounters a syntax error.
// Err holds the parser's own error for callers that want the details.
type ErrParseSyntax struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ErrParseSyntax) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: parse syntax error at line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: parse syntax error: %v", e.Path, e.Err)
}

func (e *ErrParseSyntax) Unwrap() error {
	return e.Err
}

// Error code constants for reporting.
const (
	ErrCodeReadFile    = "READ_FILE"
	ErrCodeDatabase    = "DATABASE"
	ErrCodeConfig      = "CONFIG"
	ErrCodeParseSyntax = "PARSE_SYNTAX_ERROR"
	ErrCodeUnknown     = "UNKNOWN"
)

// ErrorCode returns the error code string for a given error.
func ErrorCode(err error) string {
	switch err.(type) {
	case *ErrReadFile:
		return ErrCodeReadFile
	case *ErrDatabase:
		return ErrCodeDatabase
	case *ErrConfig:
		return ErrCodeConfig
	case *ErrParseSyntax:
		return ErrCodeParseSyntax
	default:
		return ErrCodeUnknown
	}
}
