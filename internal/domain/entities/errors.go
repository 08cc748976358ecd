package entities

import "errors"

// Domain errors
var (
	// Response errors
	ErrResponseNotFound     = errors.New("satisfaction response not found")
	ErrInvalidScore         = errors.New("score must be between 0 and 10")
	ErrResponseNotDetractor = errors.New("response is not a detractor")

	// Opportunity errors
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrInvalidValue        = errors.New("monetary value must be non-negative")
	ErrInvalidOppStatus    = errors.New("invalid opportunity status")

	// Profile errors
	ErrProfileNotFound = errors.New("business profile not found")

	// Snapshot errors
	ErrSnapshotNotFound = errors.New("diagnostic snapshot not found")

	// Generic errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
