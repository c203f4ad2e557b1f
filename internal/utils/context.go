// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, JWT token generation and validation, and other
// common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SyncKeyCtxKey is the key used to store the authenticated sync key
// identifier in the context. Used together with GetSyncKeyFromContext for
// type-safe retrieval of the sync key from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SyncKeyCtxKey, "device-group-1")
var SyncKeyCtxKey = contextKey("syncKey")

// GetSyncKeyFromContext retrieves the sync key identifier from the context.
//
// Returns the sync key of type string and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetSyncKeyFromContext(ctx context.Context) (string, bool) {
	syncKey, ok := ctx.Value(SyncKeyCtxKey).(string)
	return syncKey, ok
}
