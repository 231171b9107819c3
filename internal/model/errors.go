package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned by store lookups for missing ids.
var ErrNotFound = errors.New("not found")

// ValidationError carries per-field failure reasons for a rejected form.
// The whole request is rejected when any field fails; no partial acceptance.
type ValidationError struct {
	Fields map[string][]string
}

func (e ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed for %s", strings.Join(names, ", "))
}

// IsValidationError checks if an error is a validation error (including wrapped errors)
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// GenerationError represents a failed narrative generation attempt.
// Retryable marks transport-level failures; schema-conformance failures are
// permanent because re-prompting a non-deterministic generator does not
// guarantee conforming output.
type GenerationError struct {
	Reason    string
	Retryable bool
	Err       error
}

func (e GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("generation failed: %s", e.Reason)
}

func (e GenerationError) Unwrap() error { return e.Err }

// NewGenerationError constructs a GenerationError.
func NewGenerationError(reason string, retryable bool, err error) GenerationError {
	return GenerationError{Reason: reason, Retryable: retryable, Err: err}
}

// IsGenerationError checks if error is GenerationError
func IsGenerationError(err error) bool {
	var ge GenerationError
	return errors.As(err, &ge)
}
