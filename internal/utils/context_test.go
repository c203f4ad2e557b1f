package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSyncKeyFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), SyncKeyCtxKey, "slot-1")

	syncKey, ok := GetSyncKeyFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "slot-1", syncKey)
}

func TestGetSyncKeyFromContext_Missing(t *testing.T) {
	_, ok := GetSyncKeyFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetSyncKeyFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SyncKeyCtxKey, 42)

	_, ok := GetSyncKeyFromContext(ctx)
	assert.False(t, ok)
}
