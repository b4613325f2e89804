// SPDX-License-Identifier: MIT

package weights

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every relaxation stage. Match them with errors.Is.
var (
	// ErrInvalidVertex indicates a vertex that cannot take part in a session:
	// it is missing from the snapshot, has no neighbors, or has a vector of the
	// wrong length.
	ErrInvalidVertex = errors.New("weights: invalid vertex")

	// ErrInvalidParameter indicates a parameter outside its domain.
	ErrInvalidParameter = errors.New("weights: invalid parameter")
)

// VertexError describes which vertex was rejected and why.
// It unwraps to ErrInvalidVertex.
type VertexError struct {
	Vertex VertexIndex
	Reason string
}

// Error implements error.
func (e *VertexError) Error() string {
	return fmt.Sprintf("%v: vertex %d: %s", ErrInvalidVertex, e.Vertex, e.Reason)
}

// Unwrap returns ErrInvalidVertex.
func (e *VertexError) Unwrap() error { return ErrInvalidVertex }

// NewVertexError builds a *VertexError with a formatted reason.
func NewVertexError(v VertexIndex, format string, args ...any) *VertexError {
	return &VertexError{Vertex: v, Reason: fmt.Sprintf(format, args...)}
}

// ParameterError describes which parameter was rejected, its value and why.
// It unwraps to ErrInvalidParameter.
type ParameterError struct {
	Name   string
	Value  any
	Reason string
}

// Error implements error.
func (e *ParameterError) Error() string {
	return fmt.Sprintf("%v: %s=%v: %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidParameter.
func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// NewParameterError builds a *ParameterError.
func NewParameterError(name string, value any, reason string) *ParameterError {
	return &ParameterError{Name: name, Value: value, Reason: reason}
}
