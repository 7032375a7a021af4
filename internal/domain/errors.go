package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Patient errors
	ErrMsgPatientNotFound = "patient not found"

	// Goal errors
	ErrMsgGoalsAlreadyGenerated = "goals already generated for today"
	ErrMsgGoalPersistence       = "failed to persist goals"
	ErrMsgUnmappedMetric        = "no goal name template for metric"

	// Badge errors
	ErrMsgBadgeNotFound = "badge not found"

	// Input errors
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgInvalidTimezone = "invalid timezone"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Patient errors
	ErrPatientNotFound = errors.New(ErrMsgPatientNotFound)

	// Goal errors
	ErrGoalsAlreadyGenerated = errors.New(ErrMsgGoalsAlreadyGenerated)
	ErrGoalPersistence       = errors.New(ErrMsgGoalPersistence)
	ErrUnmappedMetric        = errors.New(ErrMsgUnmappedMetric)

	// Badge errors
	ErrBadgeNotFound = errors.New(ErrMsgBadgeNotFound)

	// Validation errors
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrInvalidTimezone = errors.New(ErrMsgInvalidTimezone)
)
