package models

import "fmt"

// Typed domain errors. The handler layer maps each type to an HTTP status
// and a stable machine-readable code; services raise them for every rule
// violation instead of returning ad-hoc strings.

// ValidationError signals a missing or malformed required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError signals an unknown resource id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

// ConflictError signals a duplicate active negotiation or a lost
// optimistic-update race.
type ConflictError struct {
	Reason string
}

func (e ConflictError) Error() string {
	return e.Reason
}

// InvalidStateError signals a transition attempted against a terminal
// negotiation, or an actor countering its own offer.
type InvalidStateError struct {
	NegotiationID string
	Reason        string
}

func (e InvalidStateError) Error() string {
	return fmt.Sprintf("negotiation %s: %s", e.NegotiationID, e.Reason)
}

// ExpiredError signals that the negotiation deadline passed before the
// attempted transition.
type ExpiredError struct {
	NegotiationID string
}

func (e ExpiredError) Error() string {
	return fmt.Sprintf("negotiation %s has expired", e.NegotiationID)
}

// UpstreamUnavailableError signals that the AI extraction service could not
// serve a request. It is always absorbed by the rule-based fallback and
// never reaches an HTTP response.
type UpstreamUnavailableError struct {
	Service string
	Err     error
}

func (e UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Service, e.Err)
}

func (e UpstreamUnavailableError) Unwrap() error { return e.Err }
