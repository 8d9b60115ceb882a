// Package errors provides structured error reporting for knob hosts.
//
// The interaction core itself never fails: value sanitization is total
// and stray pointer events degrade to no-ops. This package serves the
// surrounding adapters (configuration parsing, rendering, pointer
// dispatch) where real errors and panics can occur.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration loading or validation error.
	KindConfig
	// KindRender indicates a rendering error.
	KindRender
	// KindPointer indicates a pointer dispatch error.
	KindPointer
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPointer:
		return "pointer"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// KnobError represents a structured error in the knob framework.
type KnobError struct {
	// Op is the operation that failed (e.g., "config.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *KnobError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *KnobError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.HandlePointer").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *KnobError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
