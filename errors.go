package profilersdk

import (
	"errors"
	"fmt"
)

// ──────────────────────────────────────────────
// Error taxonomy
// ──────────────────────────────────────────────

// ValidationError reports a malformed or incomplete answer set.
// A submission that fails validation is never scored and never persisted.
type ValidationError struct {
	Survey string // "attitude" | "typology" | "values"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s survey validation: %s", e.Survey, e.Reason)
}

func validationErrorf(survey, format string, args ...any) *ValidationError {
	return &ValidationError{Survey: survey, Reason: fmt.Sprintf(format, args...)}
}

// ProfileShapeError reports a profile that was passed to the plan merger but
// is missing a required sub-field. Distinct from an absent profile, which the
// merger skips silently.
type ProfileShapeError struct {
	Profile string // "attitude" | "typology" | "values"
	Field   string
}

func (e *ProfileShapeError) Error() string {
	return fmt.Sprintf("%s profile is malformed: missing %s", e.Profile, e.Field)
}

// ErrConfigMissing signals absent external survey configuration. The loader
// recovers by falling back to the built-in defaults; callers should never see
// this as a fatal error.
var ErrConfigMissing = errors.New("survey configuration missing")

// UpstreamError wraps a failure from an external collaborator (conversational
// responder, profile store). Retryable indicates the caller may retry.
type UpstreamError struct {
	Op        string
	Err       error
	Retryable bool
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
