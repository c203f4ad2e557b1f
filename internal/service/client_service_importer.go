package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/internal/store"
)

// snapshotImporter implements [SnapshotImporter]. Merges run on their own
// goroutines but are applied one at a time under a mutex, so two snapshots
// can never interleave writes to the local database.
type snapshotImporter struct {
	local  store.LocalDatabase
	logger *logger.Logger

	mu sync.Mutex
	wg sync.WaitGroup
}

// NewSnapshotImporter constructs a [SnapshotImporter] that merges snapshot
// files into the given local database.
func NewSnapshotImporter(local store.LocalDatabase, log *logger.Logger) SnapshotImporter {
	return &snapshotImporter{
		local:  local,
		logger: log,
	}
}

// Submit implements [SnapshotImporter]. The callback is invoked exactly
// once, after the merge attempt, on the merge goroutine.
func (i *snapshotImporter) Submit(path string, onComplete func(error)) {
	i.wg.Add(1)

	go func() {
		defer i.wg.Done()

		i.mu.Lock()
		defer i.mu.Unlock()

		err := i.local.MergeSnapshot(context.Background(), path)
		if err != nil {
			i.logger.Err(err).Str("path", path).Msg("snapshot import failed")
		} else {
			i.logger.Debug().Str("path", path).Msg("snapshot import finished")
		}

		if onComplete != nil {
			onComplete(err)
		}
	}()
}

// Wait implements [SnapshotImporter].
func (i *snapshotImporter) Wait() {
	i.wg.Wait()
}
