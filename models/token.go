package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for the snapshot API
// authentication flow.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// SyncKeyID is a cached copy of the "sub" (subject) claim: a token authorizes
// exactly one remote slot, and the server checks the claim against the slot
// addressed by each request.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// SyncKeyID is the remote slot identifier extracted from the "sub" claim.
	SyncKeyID string `json:"-"`
}

// GetSyncKeyID extracts the sync key identifier from the token's "sub"
// (subject) claim. Returns an error if the claim is missing or empty.
func (t *Token) GetSyncKeyID() (string, error) {
	syncKeyID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting sync key from token: %w", err)
	}
	if syncKeyID == "" {
		return "", errors.New("empty sync key subject in token")
	}

	return syncKeyID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
