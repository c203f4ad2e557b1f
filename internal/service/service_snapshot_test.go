// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-snap-sync/internal/config"
	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/internal/mock"
	"github.com/MKhiriev/go-snap-sync/internal/store"
	"github.com/MKhiriev/go-snap-sync/internal/utils"
	"github.com/MKhiriev/go-snap-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testHashKey = "test-hash-key"

func newTestSnapshotService(t *testing.T, ctrl *gomock.Controller, hashKey string) (*snapshotService, *mock.MockSnapshotRepository) {
	t.Helper()

	mockRepository := mock.NewMockSnapshotRepository(ctrl)
	s := NewSnapshotService(mockRepository, config.ServerApp{HashKey: hashKey}, logger.Nop()).(*snapshotService)

	return s, mockRepository
}

func TestSnapshotService_GetLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockRepository := newTestSnapshotService(t, ctrl, testHashKey)
	ctx := context.Background()

	want := models.RemoteSnapshot{Version: 3, Content: "blob"}
	mockRepository.EXPECT().GetLatest(ctx, "slot-1").Return(want, nil)

	got, err := s.GetLatest(ctx, "slot-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSnapshotService_GetLatest_EmptySyncKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newTestSnapshotService(t, ctrl, testHashKey)

	_, err := s.GetLatest(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSnapshotService_GetLatest_EmptySlotIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockRepository := newTestSnapshotService(t, ctrl, testHashKey)
	ctx := context.Background()

	mockRepository.EXPECT().GetLatest(ctx, "slot-1").Return(models.RemoteSnapshot{}, nil)

	got, err := s.GetLatest(ctx, "slot-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got.Version)
}

func TestSnapshotService_Store(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockRepository := newTestSnapshotService(t, ctrl, testHashKey)
	ctx := context.Background()

	req := models.StoreSnapshotRequest{
		Version: 4,
		Content: "encrypted-blob",
		Hash:    utils.HashString("encrypted-blob", testHashKey),
	}
	mockRepository.EXPECT().Insert(ctx, "slot-1", uint64(4), "encrypted-blob").Return(nil)

	err := s.Store(ctx, "slot-1", req)
	assert.NoError(t, err)
}

func TestSnapshotService_Store_HashMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newTestSnapshotService(t, ctrl, testHashKey)

	req := models.StoreSnapshotRequest{
		Version: 4,
		Content: "encrypted-blob",
		Hash:    utils.HashString("tampered-blob", testHashKey),
	}

	err := s.Store(context.Background(), "slot-1", req)
	assert.ErrorIs(t, err, ErrHashMismatch)
}

func TestSnapshotService_Store_NoHashKeySkipsCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockRepository := newTestSnapshotService(t, ctrl, "")
	ctx := context.Background()

	req := models.StoreSnapshotRequest{Version: 1, Content: "blob", Hash: "not-checked"}
	mockRepository.EXPECT().Insert(ctx, "slot-1", uint64(1), "blob").Return(nil)

	err := s.Store(ctx, "slot-1", req)
	assert.NoError(t, err)
}

func TestSnapshotService_Store_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newTestSnapshotService(t, ctrl, testHashKey)
	ctx := context.Background()

	err := s.Store(ctx, "", models.StoreSnapshotRequest{Version: 1, Content: "blob"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = s.Store(ctx, "slot-1", models.StoreSnapshotRequest{Version: 1})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSnapshotService_Store_VersionConflictPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockRepository := newTestSnapshotService(t, ctrl, "")
	ctx := context.Background()

	mockRepository.EXPECT().
		Insert(ctx, "slot-1", uint64(2), "blob").
		Return(store.ErrVersionConflict)

	err := s.Store(ctx, "slot-1", models.StoreSnapshotRequest{Version: 2, Content: "blob"})
	assert.ErrorIs(t, err, store.ErrVersionConflict)
}

func TestAppInfoService_GetAppVersion(t *testing.T) {
	s, err := NewAppInfoService(config.ServerApp{Version: "1.2.3"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", s.GetAppVersion(context.Background()))
}

func TestAppInfoService_EmptyVersion(t *testing.T) {
	_, err := NewAppInfoService(config.ServerApp{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
