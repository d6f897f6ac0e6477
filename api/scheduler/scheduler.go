// Package scheduler runs the nightly snapshot job. Every collection blob is
// copied to a sibling key so a bad write during the day can be recovered by
// hand from the previous night's copy.
package scheduler

import (
	"context"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/justiceflow/justiceflow-api/databases"
	"github.com/justiceflow/justiceflow-api/storage"
)

// SnapshotSuffix is appended to a collection key to form its snapshot key
const SnapshotSuffix = "_snapshot"

// snapshotKeys lists every collection the nightly job copies
var snapshotKeys = []string{
	databases.CasesKey,
	databases.StationsKey,
	databases.HospitalsKey,
	databases.CourtsKey,
	databases.AccountsKey,
}

// Scheduler handles the periodic snapshot job
type Scheduler struct {
	cron    *cron.Cron
	backend storage.Backend
}

// NewScheduler creates a new scheduler over the given backend
func NewScheduler(backend storage.Backend) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		backend: backend,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("@daily", func() {
		if err := s.Snapshot(context.Background()); err != nil {
			zap.S().With(err).Error("snapshot job failed")
		}
	})
	if err != nil {
		return errors.Wrap(err, "failed to register snapshot job")
	}
	s.cron.Start()
	zap.S().Info("snapshot scheduler started")
	return nil
}

// Stop halts the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// Snapshot copies each collection blob to its snapshot key. Collections that
// were never written are skipped.
func (s *Scheduler) Snapshot(ctx context.Context) error {
	for _, key := range snapshotKeys {
		raw, err := s.backend.Get(ctx, key)
		if errors.Is(err, storage.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := s.backend.Put(ctx, key+SnapshotSuffix, raw); err != nil {
			return err
		}
		zap.S().Debugw("collection snapshotted", "key", key)
	}
	return nil
}
