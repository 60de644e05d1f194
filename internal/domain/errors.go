package domain

import "errors"

// Sentinel errors for cross-provider error classification.
// Providers should wrap these so the CLI can handle error categories
// uniformly without importing provider-specific SDKs.
//
//	return fmt.Errorf("failed to describe cluster: %w", domain.ErrNotFound)
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the provider throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrConflict indicates a state or uniqueness conflict, such as
	// a dashboard body rejected by the monitoring service.
	ErrConflict = errors.New("conflict")

	// ErrNoInstances indicates that the selected clusters have no
	// member instances to monitor.
	ErrNoInstances = errors.New("no cluster instances")
)
