// Package repository defines data access for the durable MySQL collections
// (accounts, appointments, catalog) and for the Redis-backed session state
// (live sessions, booking draft, cart, pending prompt, order summary).
// The sentinel values declared here let higher layers such as handlers
// distinguish failure scenarios without inspecting driver errors. For
// example, ErrIdentifierExists signals a registration collision that
// handlers translate into HTTP 409, while ErrSessionNotFound covers both
// logged-out and expired tokens and maps to HTTP 401.
package repository

import "errors"

// ErrIdentifierExists is returned when registration collides with an
// existing account identifier.
var ErrIdentifierExists = errors.New("identifier already registered")

// ErrAccountNotFound is returned when no account matches a lookup, and
// also for failed credential checks so unknown identifiers and wrong
// secrets are indistinguishable to the caller.
var ErrAccountNotFound = errors.New("account not found")

// ErrAppointmentNotFound is returned when an appointment lookup matches
// no row for the account. Cancellation treats it as a no-op.
var ErrAppointmentNotFound = errors.New("appointment not found")

// ErrServiceNotFound is returned for an unknown service slug.
var ErrServiceNotFound = errors.New("service not found")

// ErrProductNotFound is returned for an unknown product slug.
var ErrProductNotFound = errors.New("product not found")

// ErrSessionNotFound is returned when a session key is absent from Redis:
// the token was logged out or its TTL elapsed.
var ErrSessionNotFound = errors.New("session not found")

// ErrDraftNotFound is returned when no booking draft exists for the
// session, i.e. the booking dialog is closed.
var ErrDraftNotFound = errors.New("booking draft not found")

// ErrPromptNotFound is returned when no pending prompt exists, or the
// given prompt id went stale because a newer prompt replaced it.
var ErrPromptNotFound = errors.New("prompt not found")

// ErrOrderNotFound is returned when no order summary is awaiting
// dismissal for the session.
var ErrOrderNotFound = errors.New("order summary not found")
