// Package common contains shared sentinel errors and small helpers used
// across the negotiation service.
package common

import "errors"

var (
	// ErrNotFound is returned when an offer does not exist or is not
	// visible to the caller.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned for malformed input, e.g. an inverted or
	// non-positive salary range. It is checked before any state mutates.
	ErrValidation = errors.New("validation error")

	// ErrTokenInvalid is returned when a candidate token is unknown,
	// expired, revoked, or already consumed.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrAlreadySubmitted is returned when a candidate range was already
	// accepted for the current round.
	ErrAlreadySubmitted = errors.New("range already submitted for this round")

	// ErrRoundLimitExceeded is returned when re-negotiation is attempted
	// past the offer's round cap.
	ErrRoundLimitExceeded = errors.New("negotiation round limit exceeded")

	// ErrInvalidTransition is returned when an operation is not legal in
	// the offer's current negotiation state.
	ErrInvalidTransition = errors.New("invalid negotiation state transition")

	// ErrUnauthorized is returned when employer authentication fails.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal hides storage and infrastructure failures from callers.
	ErrInternal = errors.New("internal error")
)
