package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the blob store rejects the agent's
	// bearer token.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrVersionConflict is returned when the blob store rejects an upload
	// because the version tag was already written.
	ErrVersionConflict = errors.New("version conflict")
)
