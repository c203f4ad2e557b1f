package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("key"))
	mac.Write([]byte("payload"))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, HashString("payload", "key"))
}

func TestHashString_KeyChangesSignature(t *testing.T) {
	assert.NotEqual(t, HashString("payload", "key-a"), HashString("payload", "key-b"))
}

func TestHash_MatchesHashString(t *testing.T) {
	InitHasherPool("key")

	got := hex.EncodeToString(Hash([]byte("payload")))
	assert.Equal(t, HashString("payload", "key"), got)
}

func TestHash_PooledHasherIsReusable(t *testing.T) {
	InitHasherPool("key")

	first := Hash([]byte("payload"))
	second := Hash([]byte("payload"))
	assert.Equal(t, first, second)
}

func TestHashEqual(t *testing.T) {
	signature := HashString("payload", "key")

	assert.True(t, HashEqual(signature, signature))
	assert.False(t, HashEqual(signature, HashString("other", "key")))
	assert.False(t, HashEqual(signature, ""))
}
