// Package common defines shared sentinel errors used across VidVault
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal  = errors.New("internal error")
	ErrPersistence = errors.New("persistence error")

	// Validation errors (bad or missing input).
	ErrValidation      = errors.New("validation error")
	ErrInvalidKey      = errors.New("invalid object key")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrQuotaExceeded   = errors.New("monthly quota exceeded")

	// Object storage errors.
	ErrStorageUnavailable = errors.New("object storage unavailable")

	// Rename inconsistency windows. Both keys hold the content when the
	// old-key delete fails; metadata still references the old key when the
	// metadata update fails after a successful move.
	ErrDuplicateContent = errors.New("duplicate content after rename")
	ErrMetadataStale    = errors.New("metadata references moved key")
)
