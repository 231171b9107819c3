// Package validate checks simulation form input before any generation or
// storage happens. Validation is pure: no side effects, whole-request
// rejection with per-field reasons.
package validate

import (
	"fmt"
	"strings"

	"github.com/lifefork/lifefork-server/internal/model"
)

const (
	MinAge = 16
	MaxAge = 80
)

// FieldErrors accumulates failure reasons keyed by form field name.
type FieldErrors struct {
	fields map[string][]string
}

func newFieldErrors() *FieldErrors {
	return &FieldErrors{fields: map[string][]string{}}
}

func (f *FieldErrors) add(field, reason string) {
	f.fields[field] = append(f.fields[field], reason)
}

// Empty reports whether no field failed.
func (f *FieldErrors) Empty() bool { return len(f.fields) == 0 }

// Fields returns the accumulated field -> reasons map.
func (f *FieldErrors) Fields() map[string][]string { return f.fields }

// Err converts the accumulated failures into a model.ValidationError,
// or nil when validation passed.
func (f *FieldErrors) Err() error {
	if f.Empty() {
		return nil
	}
	return model.ValidationError{Fields: f.fields}
}

// SimulationForm validates a decoded form in place: required string fields are
// trimmed and must be non-empty, age must be within [16, 80]. Trimmed values
// are written back so the stored record never carries padding whitespace.
func SimulationForm(form *model.SimulationForm) *FieldErrors {
	errs := newFieldErrors()

	if form.Age < MinAge || form.Age > MaxAge {
		errs.add("age", fmt.Sprintf("age must be between %d and %d", MinAge, MaxAge))
	}

	requireNonEmpty(errs, "hobbies", &form.Hobbies)
	requireNonEmpty(errs, "personality", &form.Personality)
	requireNonEmpty(errs, "currentSituation", &form.CurrentSituation)
	requireNonEmpty(errs, "currentGoals", &form.CurrentGoals)
	requireNonEmpty(errs, "alternativeChoice", &form.AlternativeChoice)

	if form.Gender != nil {
		g := strings.TrimSpace(*form.Gender)
		if g == "" {
			form.Gender = nil
		} else {
			form.Gender = &g
		}
	}

	return errs
}

func requireNonEmpty(errs *FieldErrors, field string, v *string) {
	*v = strings.TrimSpace(*v)
	if *v == "" {
		errs.add(field, field+" is required")
	}
}
