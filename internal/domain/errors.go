package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter marks an input outside its documented range.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNumericDegeneracy marks a computation that would produce NaN or Inf.
	ErrNumericDegeneracy = errors.New("numeric degeneracy")
)

// ParameterError names the offending parameter and, when known, its valid range.
type ParameterError struct {
	Name   string
	Value  string
	Min    string
	Max    string
	Reason string
}

func (e *ParameterError) Error() string {
	switch {
	case e.Reason != "":
		return fmt.Sprintf("%s %s=%s: %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
	case e.Max == "":
		return fmt.Sprintf("%s %s=%s: must be at least %s", ErrInvalidParameter, e.Name, e.Value, e.Min)
	default:
		return fmt.Sprintf("%s %s=%s: must be within [%s, %s]", ErrInvalidParameter, e.Name, e.Value, e.Min, e.Max)
	}
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }
