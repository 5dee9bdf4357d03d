package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrPersonaNotFound is returned when a persona name is not in the registry
	ErrPersonaNotFound = errors.New("persona not found in registry")

	// ErrUnknownTier is returned when a tier name is not good/better/best
	ErrUnknownTier = errors.New("unknown tier")

	// ErrExternalUnavailable is returned when the external classifier times
	// out, errors, or returns a malformed response
	ErrExternalUnavailable = errors.New("external classifier unavailable")

	// ErrCacheMiss is returned when a detection result is not cached
	ErrCacheMiss = errors.New("cache miss")

	// ErrCatalogUnavailable is returned when the catalog store cannot be read
	ErrCatalogUnavailable = errors.New("catalog store unavailable")

	// ErrStoreUnavailable is returned when the performance store cannot be written
	ErrStoreUnavailable = errors.New("performance store unavailable")
)
