// Package errors provides sentinel errors and error types for the chess program.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedPosition indicates position text with wrong dimensions or
	// unrecognised characters.
	ErrMalformedPosition = errors.New("malformed position")

	// ErrIllegalMove indicates a move absent from the current legal move list.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidNotation indicates move text that names no legal move.
	ErrInvalidNotation = errors.New("invalid move notation")

	// ErrUnknownSave indicates a save name with no stored game.
	ErrUnknownSave = errors.New("unknown save")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRecursionInvariant indicates check detection was entered from inside
	// an attack probe.
	ErrRecursionInvariant = errors.New("check detection re-entered during attack probe")

	// ErrQuit indicates the user abandoned input, e.g. with Ctrl-C.
	ErrQuit = errors.New("quit")
)

// PositionError wraps errors with the location of the offending character in
// a text position.
type PositionError struct {
	Err  error // The underlying error
	Row  int   // 0-based row (0 is rank 8); -1 if the row count is wrong
	Col  int   // 0-based column; -1 if the row length is wrong
	Char byte  // The offending character (0 if not applicable)
	Got  int   // Observed length for dimension errors
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	switch {
	case e.Row < 0:
		parts = append(parts, fmt.Sprintf("expected 8 rows, got %d", e.Got))
	case e.Col < 0:
		parts = append(parts, fmt.Sprintf("row %d: expected 8 characters, got %d", e.Row, e.Got))
	default:
		parts = append(parts, fmt.Sprintf("row %d, col %d", e.Row, e.Col))
		if e.Char != 0 {
			parts = append(parts, fmt.Sprintf("unrecognised character %q", e.Char))
		}
	}

	context := strings.Join(parts, ": ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors with move context: the move text or array form and
// the ply at which it was requested.
type MoveError struct {
	Err  error  // The underlying error
	Move string // The move as text (if applicable)
	Ply  int    // Ply number where error occurred (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
