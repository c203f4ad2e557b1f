// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestImporter(t *testing.T, ctrl *gomock.Controller) (*snapshotImporter, *mock.MockLocalDatabase) {
	t.Helper()

	mockLocal := mock.NewMockLocalDatabase(ctrl)
	i := NewSnapshotImporter(mockLocal, logger.Nop()).(*snapshotImporter)

	return i, mockLocal
}

func TestSnapshotImporter_Submit_CallbackRunsExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	i, mockLocal := newTestImporter(t, ctrl)

	mockLocal.EXPECT().MergeSnapshot(gomock.Any(), "/tmp/snap.json").Return(nil)

	var calls atomic.Int32
	i.Submit("/tmp/snap.json", func(err error) {
		assert.NoError(t, err)
		calls.Add(1)
	})
	i.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestSnapshotImporter_Submit_CallbackReceivesMergeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	i, mockLocal := newTestImporter(t, ctrl)

	mergeErr := errors.New("malformed snapshot")
	mockLocal.EXPECT().MergeSnapshot(gomock.Any(), "/tmp/bad.json").Return(mergeErr)

	var got error
	i.Submit("/tmp/bad.json", func(err error) { got = err })
	i.Wait()

	assert.ErrorIs(t, got, mergeErr)
}

func TestSnapshotImporter_Submit_NilCallbackIsAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	i, mockLocal := newTestImporter(t, ctrl)

	mockLocal.EXPECT().MergeSnapshot(gomock.Any(), "/tmp/snap.json").Return(nil)

	i.Submit("/tmp/snap.json", nil)
	i.Wait()
}

// Two concurrent submissions must never interleave merges.
func TestSnapshotImporter_MergesAreSerialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	i, mockLocal := newTestImporter(t, ctrl)

	var active atomic.Int32
	var maxActive atomic.Int32
	var mu sync.Mutex

	mockLocal.EXPECT().
		MergeSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string) error {
			current := active.Add(1)
			mu.Lock()
			if current > maxActive.Load() {
				maxActive.Store(current)
			}
			mu.Unlock()
			active.Add(-1)
			return nil
		}).
		Times(4)

	for n := 0; n < 4; n++ {
		i.Submit("/tmp/snap.json", nil)
	}
	i.Wait()

	assert.Equal(t, int32(1), maxActive.Load())
}
