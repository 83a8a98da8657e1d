// Package core holds the error taxonomy shared by every core package.
//
// Every failure that can escape the pairwise engine, the neighbor-joining
// builder, or the pipeline runner is one of the Codes below. Errors carry
// their Code so a caller (CLI, server) can map them to a process exit
// code without string matching.
package core

import "fmt"

// Code identifies a class of core failure.
type Code int

const (
	// UnknownAlgorithm is returned when a pairwise algorithm name has no
	// registered backend.
	UnknownAlgorithm Code = iota
	// UnknownTable is returned when a scoring table name is not in the
	// catalog.
	UnknownTable
	// UnknownParser is returned when an ingestion format name is not
	// recognized by the external parsing collaborator.
	UnknownParser
	// EmptyDatabase is returned when an operation requires at least two
	// sequences and the database has fewer.
	EmptyDatabase
	// DegenerateDistance is returned when a distance matrix cell is
	// non-finite.
	DegenerateDistance
	// DeviceOutOfMemory is returned when GPU memory allocation fails.
	DeviceOutOfMemory
	// TransportError is returned when a cluster collective fails. The
	// transports in this module do not detect collectives called out of
	// program order.
	TransportError
	// PipelineInvalid is returned when a pipeline's module chain fails
	// pre-flight composition checks.
	PipelineInvalid
	// InternalInvariant marks a non-recoverable internal contradiction.
	InternalInvariant
)

func (c Code) String() string {
	switch c {
	case UnknownAlgorithm:
		return "UnknownAlgorithm"
	case UnknownTable:
		return "UnknownTable"
	case UnknownParser:
		return "UnknownParser"
	case EmptyDatabase:
		return "EmptyDatabase"
	case DegenerateDistance:
		return "DegenerateDistance"
	case DeviceOutOfMemory:
		return "DeviceOutOfMemory"
	case TransportError:
		return "TransportError"
	case PipelineInvalid:
		return "PipelineInvalid"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return "Unknown"
	}
}

// ExitCode maps a Code onto a process exit code:
// 0 success, 1 config/input error, 2 transport error, 3 device/resource
// error.
func (c Code) ExitCode() int {
	switch c {
	case TransportError:
		return 2
	case DeviceOutOfMemory:
		return 3
	default:
		return 1
	}
}

// Error is the concrete error type raised by core packages. It wraps an
// optional underlying cause so callers can still use errors.Is/As on it.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// ExitCode satisfies the same accessor as Code.ExitCode for convenience
// at call sites that only have an *Error in hand.
func (e *Error) ExitCode() int { return e.Code.ExitCode() }

// New constructs an *Error with no wrapped cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap constructs an *Error wrapping cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Err: cause}
}

// tainted marks the process as having raised an InternalInvariant error.
// Once set it never clears: invariant violations are non-recoverable.
var tainted bool

// Taint marks the process non-recoverable. Called by any stage that
// raises InternalInvariant.
func Taint() { tainted = true }

// Tainted reports whether the process has raised an InternalInvariant
// error at any point in its lifetime.
func Tainted() bool { return tainted }
