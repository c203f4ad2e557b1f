// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/MKhiriev/go-snap-sync/internal/adapter"
	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/internal/mock"
	"github.com/MKhiriev/go-snap-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestReconciler builds a syncReconciler with all collaborators mocked
// and a throwaway temp dir.
func newTestReconciler(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*syncReconciler,
	*mock.MockSettingsStorage,
	*mock.MockLocalDatabase,
	*mock.MockBlobStore,
	*mock.MockEncryptor,
	*mock.MockSnapshotImporter,
) {
	t.Helper()

	mockSettings := mock.NewMockSettingsStorage(ctrl)
	mockLocal := mock.NewMockLocalDatabase(ctrl)
	mockBlobStore := mock.NewMockBlobStore(ctrl)
	mockEncryptor := mock.NewMockEncryptor(ctrl)
	mockImporter := mock.NewMockSnapshotImporter(ctrl)

	r := NewSyncReconciler(
		mockSettings,
		mockLocal,
		mockBlobStore,
		mockEncryptor,
		mockImporter,
		t.TempDir(),
		logger.Nop(),
	).(*syncReconciler)

	return r, mockSettings, mockLocal, mockBlobStore, mockEncryptor, mockImporter
}

// expectEnabledCycle wires the settings reads every enabled cycle performs.
func expectEnabledCycle(ctx context.Context, mockSettings *mock.MockSettingsStorage, mockEncryptor *mock.MockEncryptor, key []byte) {
	mockSettings.EXPECT().SyncEnabled(ctx).Return(true, nil)
	mockSettings.EXPECT().EncryptionKeyMaterial(ctx).Return("material", nil)
	mockSettings.EXPECT().SyncKeyID(ctx).Return("slot-1", nil)
	mockEncryptor.EXPECT().DeriveKey("material", "slot-1").Return(key, nil)
}

func TestSyncReconciler_StartsDirty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, _, _, _, _, _ := newTestReconciler(t, ctrl)

	assert.True(t, r.Dirty())
	assert.Equal(t, uint64(0), r.CurrentVersion())
}

func TestSyncReconciler_Sync_DisabledIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, mockSettings, _, _, _, _ := newTestReconciler(t, ctrl)
	ctx := context.Background()

	// no fetch, no store, no disable: the controller fails the test on any
	// unexpected network call
	mockSettings.EXPECT().SyncEnabled(ctx).Return(false, nil)

	r.Sync(ctx)
}

func TestSyncReconciler_Sync_SettingsReadErrorSkipsCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, mockSettings, _, _, _, _ := newTestReconciler(t, ctrl)
	ctx := context.Background()

	mockSettings.EXPECT().SyncEnabled(ctx).Return(false, errors.New("settings table unreadable"))

	r.Sync(ctx)
}

// Fresh install: empty remote slot must be seeded by this client.
func TestSyncReconciler_Sync_SeedsEmptyRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, mockSettings, mockLocal, mockBlobStore, mockEncryptor, _ := newTestReconciler(t, ctrl)
	ctx := context.Background()
	key := []byte("0123456789abcdef0123456789abcdef")

	expectEnabledCycle(ctx, mockSettings, mockEncryptor, key)
	mockBlobStore.EXPECT().Fetch(ctx, "slot-1").Return(models.RemoteSnapshot{Version: 0}, nil)

	mockLocal.EXPECT().ExportSnapshot(ctx, gomock.Any()).Return(nil)
	mockEncryptor.EXPECT().EncryptFileToString(gomock.Any(), key).Return("encrypted-blob", nil)
	mockBlobStore.EXPECT().Store(ctx, "slot-1", uint64(1), "encrypted-blob").Return(nil)

	r.Sync(ctx)

	assert.Equal(t, uint64(1), r.CurrentVersion())
	assert.False(t, r.Dirty())
}

// Remote is newer: decrypt and hand off to the importer, advance the
// version, and skip push since nothing changed locally.
func TestSyncReconciler_Sync_RemoteNewerSubmitsImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, mockSettings, _, mockBlobStore, mockEncryptor, mockImporter := newTestReconciler(t, ctrl)
	ctx := context.Background()
	key := []byte("0123456789abcdef0123456789abcdef")

	r.currentVersion.Store(2)
	r.dirty.Store(false)

	expectEnabledCycle(ctx, mockSettings, mockEncryptor, key)
	mockBlobStore.EXPECT().Fetch(ctx, "slot-1").Return(models.RemoteSnapshot{Version: 5, Content: "remote-blob"}, nil)

	var submittedPath string
	mockEncryptor.EXPECT().
		DecryptStringToFile("remote-blob", key, gomock.Any()).
		DoAndReturn(func(_ string, _ []byte, destPath string) error {
			return os.WriteFile(destPath, []byte(`{"entries":[]}`), 0o600)
		})
	mockImporter.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		Do(func(path string, onComplete func(error)) {
			submittedPath = path
			onComplete(nil)
		})

	r.Sync(ctx)

	assert.Equal(t, uint64(6), r.CurrentVersion())
	assert.False(t, r.Dirty())

	// completion callback owns temp-file deletion
	_, err := os.Stat(submittedPath)
	assert.True(t, os.IsNotExist(err))
}

// Remote is not newer: no decrypt, no import, version bookkeeping still
// lands on fetched+1.
func TestSyncReconciler_Sync_StaleRemoteSkipsMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, mockSettings, _, mockBlobStore, mockEncryptor, _ := newTestReconciler(t, ctrl)
	ctx := context.Background()
	key := []byte("0123456789abcdef0123456789abcdef")

	r.currentVersion.Store(4)
	r.dirty.Store(false)

	expectEnabledCycle(ctx, mockSettings, mockEncryptor, key)
	mockBlobStore.EXPECT().Fetch(ctx, "slot-1").Return(models.RemoteSnapshot{Version: 3, Content: "old-blob"}, nil)

	r.Sync(ctx)

	assert.Equal(t, uint64(4), r.CurrentVersion())
	assert.False(t, r.Dirty())
}

func TestSyncReconciler_Sync_PushesWhenDirty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, mockSettings, mockLocal, mockBlobStore, mockEncryptor, _ := newTestReconciler(t, ctrl)
	ctx := context.Background()
	key := []byte("0123456789abcdef0123456789abcdef")

	r.currentVersion.Store(4)
	r.dirty.Store(true)

	expectEnabledCycle(ctx, mockSettings, mockEncryptor, key)

	// fetch strictly precedes upload within a cycle
	fetchCall := mockBlobStore.EXPECT().
		Fetch(ctx, "slot-1").
		Return(models.RemoteSnapshot{Version: 3, Content: "old-blob"}, nil)

	mockLocal.EXPECT().ExportSnapshot(ctx, gomock.Any()).Return(nil)
	mockEncryptor.EXPECT().EncryptFileToString(gomock.Any(), key).Return("fresh-blob", nil)
	mockBlobStore.EXPECT().
		Store(ctx, "slot-1", uint64(4), "fresh-blob").
		Return(nil).
		After(fetchCall)

	r.Sync(ctx)

	assert.Equal(t, uint64(4), r.CurrentVersion())
	assert.False(t, r.Dirty())
}

func TestSyncReconciler_Sync_FetchErrorDisablesSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, mockSettings, _, mockBlobStore, mockEncryptor, _ := newTestReconciler(t, ctrl)
	ctx := context.Background()
	key := []byte("0123456789abcdef0123456789abcdef")

	expectEnabledCycle(ctx, mockSettings, mockEncryptor, key)
	mockBlobStore.EXPECT().Fetch(ctx, "slot-1").Return(models.RemoteSnapshot{}, errors.New("connection refused"))

	// disabled exactly once, no upload attempted
	mockSettings.EXPECT().DisableSync(ctx).Return(nil).Times(1)

	r.Sync(ctx)
}

func TestSyncReconciler_Sync_DecryptErrorDisablesSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, mockSettings, _, mockBlobStore, mockEncryptor, _ := newTestReconciler(t, ctrl)
	ctx := context.Background()
	key := []byte("0123456789abcdef0123456789abcdef")

	expectEnabledCycle(ctx, mockSettings, mockEncryptor, key)
	mockBlobStore.EXPECT().Fetch(ctx, "slot-1").Return(models.RemoteSnapshot{Version: 7, Content: "garbage"}, nil)
	mockEncryptor.EXPECT().
		DecryptStringToFile("garbage", key, gomock.Any()).
		Return(errors.New("snapshot decryption failed"))

	mockSettings.EXPECT().DisableSync(ctx).Return(nil).Times(1)

	r.Sync(ctx)
}

func TestSyncReconciler_Sync_UploadConflictDisablesSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, mockSettings, mockLocal, mockBlobStore, mockEncryptor, _ := newTestReconciler(t, ctrl)
	ctx := context.Background()
	key := []byte("0123456789abcdef0123456789abcdef")

	expectEnabledCycle(ctx, mockSettings, mockEncryptor, key)
	mockBlobStore.EXPECT().Fetch(ctx, "slot-1").Return(models.RemoteSnapshot{Version: 0}, nil)
	mockLocal.EXPECT().ExportSnapshot(ctx, gomock.Any()).Return(nil)
	mockEncryptor.EXPECT().EncryptFileToString(gomock.Any(), key).Return("blob", nil)
	mockBlobStore.EXPECT().Store(ctx, "slot-1", uint64(1), "blob").Return(adapter.ErrVersionConflict)

	mockSettings.EXPECT().DisableSync(ctx).Return(nil).Times(1)

	r.Sync(ctx)

	// upload never succeeded, so the change is still pending
	assert.True(t, r.Dirty())
}

// A merge that fails after the version already advanced marks the database
// dirty so the next cycle re-uploads local state.
func TestSyncReconciler_MergeFailureSchedulesReUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, mockSettings, _, mockBlobStore, mockEncryptor, mockImporter := newTestReconciler(t, ctrl)
	ctx := context.Background()
	key := []byte("0123456789abcdef0123456789abcdef")

	r.dirty.Store(false)

	expectEnabledCycle(ctx, mockSettings, mockEncryptor, key)
	mockBlobStore.EXPECT().Fetch(ctx, "slot-1").Return(models.RemoteSnapshot{Version: 2, Content: "remote-blob"}, nil)
	mockEncryptor.EXPECT().DecryptStringToFile("remote-blob", key, gomock.Any()).Return(nil)

	// the importer runs in the background, so its callback lands after the
	// cycle already finished
	var onComplete func(error)
	mockImporter.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		Do(func(_ string, cb func(error)) { onComplete = cb })

	r.Sync(ctx)

	assert.Equal(t, uint64(3), r.CurrentVersion())
	assert.False(t, r.Dirty())

	require.NotNil(t, onComplete)
	onComplete(errors.New("malformed snapshot"))

	assert.True(t, r.Dirty())
}

// The version counter always lands on fetched+1 and never moves backwards
// across a realistic cycle sequence.
func TestSyncReconciler_VersionFollowsFetched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, mockSettings, _, mockBlobStore, mockEncryptor, mockImporter := newTestReconciler(t, ctrl)
	ctx := context.Background()
	key := []byte("0123456789abcdef0123456789abcdef")

	r.dirty.Store(false)

	fetchedVersions := []uint64{3, 3, 8}
	var previous uint64

	mockEncryptor.EXPECT().DecryptStringToFile(gomock.Any(), key, gomock.Any()).Return(nil).AnyTimes()
	mockImporter.EXPECT().Submit(gomock.Any(), gomock.Any()).AnyTimes()

	for _, fetched := range fetchedVersions {
		expectEnabledCycle(ctx, mockSettings, mockEncryptor, key)
		mockBlobStore.EXPECT().Fetch(ctx, "slot-1").Return(models.RemoteSnapshot{Version: fetched, Content: "blob"}, nil)

		r.Sync(ctx)

		require.Equal(t, fetched+1, r.CurrentVersion())
		require.GreaterOrEqual(t, r.CurrentVersion(), previous)
		previous = r.CurrentVersion()
	}
}

func TestSyncReconciler_OnMutatingCommandSetsDirty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, _, _, _, _, _ := newTestReconciler(t, ctrl)

	r.dirty.Store(false)
	r.OnMutatingCommand()

	assert.True(t, r.Dirty())
}

func TestSyncReconciler_LifecycleHooksTriggerSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, mockSettings, _, _, _, _ := newTestReconciler(t, ctrl)
	ctx := context.Background()

	// both hooks run a cycle; disabled keeps it to the settings read
	mockSettings.EXPECT().SyncEnabled(ctx).Return(false, nil).Times(2)

	r.OnResume(ctx)
	r.OnPause(ctx)
}
