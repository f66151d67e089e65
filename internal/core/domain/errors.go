package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrInvariantViolation = errors.New("invariant violation")
)

var (
	ErrReceiptMissing   = errors.New("receipt has not been uploaded")
	ErrReceiptTooLarge  = errors.New("receipt exceeds 5 MiB")
	ErrAlreadySubmitted = errors.New("booking is already submitted")
	ErrBackendRejected  = errors.New("booking backend rejected the submission")
)

var (
	ErrTerminalStep = errors.New("no step after confirmation")
	ErrFirstStep    = errors.New("no step before contact")
)

var (
	ErrStoreCorrupt = errors.New("stored draft is unreadable")
	ErrNoSession    = errors.New("wizard session not found")
)

// ValidationError blocks the current transition only. Fields maps the input
// field name to a user facing message.
type ValidationError struct {
	Step      Step
	Fields    map[string]string
	Invariant bool
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s step: %s", e.Step, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	return e.Invariant && target == ErrInvariantViolation
}

// FieldMissingError reports a step input that the page was expected to
// provide but did not. It is a programming error on the caller's side.
type FieldMissingError struct {
	Field string
}

func (e *FieldMissingError) Error() string {
	return fmt.Sprintf("required input %q is missing", e.Field)
}
