package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrHashMismatch is returned when an uploaded snapshot's HMAC
	// signature does not match the payload.
	ErrHashMismatch = errors.New("snapshot hash mismatch")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
