// Package sync reconciles the local record cache with the remote store.
// A reconciliation pass is one-shot and idempotent: every unit of work
// (one record's upload or deletion) is committed to the local store
// immediately after its remote call succeeds, so an interrupted pass
// leaves the cache valid and resumable.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	clientapi "github.com/waymark-app/waymark/internal/client/api"
	"github.com/waymark-app/waymark/internal/client/auth"
	"github.com/waymark-app/waymark/internal/client/netcheck"
	"github.com/waymark-app/waymark/internal/client/storage"
	"github.com/waymark-app/waymark/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Precondition errors. Both fail fast with zero side effects.
var (
	// ErrOffline indicates there is no network connectivity
	ErrOffline = errors.New("no network connectivity")

	// ErrNotAuthenticated indicates no valid session exists
	ErrNotAuthenticated = errors.New("not authenticated")
)

// SyncResult summarizes one reconciliation pass. A pass with Failed > 0
// is still an overall success; callers must check Failed to detect
// partial failure.
type SyncResult struct {
	Uploaded     int    // records uploaded to the server
	Deleted      int    // tombstones confirmed and removed
	Failed       int    // per-record failures, batch continued
	ErrorMessage string // first per-record error seen, if any
}

func (r *SyncResult) String() string {
	return fmt.Sprintf("uploaded: %d, deleted: %d, failed: %d", r.Uploaded, r.Deleted, r.Failed)
}

// Service reconciles the local record cache with the remote store
type Service interface {
	// SyncAll pushes pending uploads and pending deletions to the
	// remote store. Safe to invoke repeatedly and concurrently.
	SyncAll(ctx context.Context) (*SyncResult, error)

	// DownloadAndMerge pulls the remote record set selected by scope
	// and merges it into the local cache without clobbering unsynced
	// local state or resurrecting local deletions. Returns the number
	// of records accepted into the cache.
	DownloadAndMerge(ctx context.Context, scope clientapi.Scope) (int, error)

	// PendingCount returns the number of records awaiting upload or
	// deletion.
	PendingCount(ctx context.Context) (int, error)
}

type service struct {
	remote  clientapi.Remote
	records storage.RecordStore
	auth    auth.Service
	checker netcheck.Checker
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates a new sync service
func NewService(remote clientapi.Remote, records storage.RecordStore, authService auth.Service, checker netcheck.Checker, logger *slog.Logger) Service {
	return &service{
		remote:  remote,
		records: records,
		auth:    authService,
		checker: checker,
		logger:  logger,
		now:     time.Now,
	}
}

// SyncAll runs one reconciliation pass: upload phase, deletion phase,
// tombstone cleanup. Each phase works on a snapshot taken at phase
// start; records that turn pending mid-pass are picked up by the next
// pass. A single record's failure never aborts the batch.
func (s *service) SyncAll(ctx context.Context) (*SyncResult, error) {
	if !s.checker.IsOnline() {
		return nil, ErrOffline
	}

	authed, err := s.auth.IsAuthenticated(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check authentication: %w", err)
	}
	if !authed {
		return nil, ErrNotAuthenticated
	}

	s.logger.Info("starting sync pass")

	result := &SyncResult{}
	readFailed := false
	firstError := ""
	recordError := func(msg string) {
		if firstError == "" {
			firstError = msg
		}
	}

	// Upload phase
	pending, err := s.records.ListPendingUpload(ctx)
	if err != nil {
		readFailed = true
		recordError(fmt.Sprintf("failed to read pending uploads: %v", err))
		s.logger.Error("failed to read pending uploads", "error", err)
	} else {
		s.logger.Info("collected pending uploads", "count", len(pending))
		for _, rec := range pending {
			if _, err := s.remote.Create(ctx, rec.Record); err != nil {
				result.Failed++
				recordError(fmt.Sprintf("failed to upload %q: %v", rec.Title, err))
				s.logger.Warn("failed to upload record", "record_id", rec.ID, "error", err)
				continue
			}
			if err := s.records.MarkSynced(ctx, rec.ID); err != nil {
				result.Failed++
				recordError(fmt.Sprintf("failed to mark %q synced: %v", rec.Title, err))
				s.logger.Error("failed to mark record synced", "record_id", rec.ID, "error", err)
				continue
			}
			result.Uploaded++
			s.logger.Debug("uploaded record", "record_id", rec.ID)
		}
	}

	// Deletion phase
	tombstones, err := s.records.ListPendingDeletion(ctx)
	if err != nil {
		readFailed = true
		recordError(fmt.Sprintf("failed to read pending deletions: %v", err))
		s.logger.Error("failed to read pending deletions", "error", err)
	} else {
		s.logger.Info("collected pending deletions", "count", len(tombstones))
		for _, rec := range tombstones {
			err := s.remote.Delete(ctx, rec.ID)
			if err != nil && !errors.Is(err, clientapi.ErrNotFound) {
				result.Failed++
				recordError(fmt.Sprintf("failed to delete %q: %v", rec.Title, err))
				s.logger.Warn("failed to delete record remotely", "record_id", rec.ID, "error", err)
				continue
			}
			// Remote copy is gone (or never existed): the tombstone
			// has nothing left to sync, remove it entirely.
			if err := s.records.HardDelete(ctx, rec.ID); err != nil {
				result.Failed++
				recordError(fmt.Sprintf("failed to remove tombstone %q: %v", rec.Title, err))
				s.logger.Error("failed to remove tombstone", "record_id", rec.ID, "error", err)
				continue
			}
			result.Deleted++
			s.logger.Debug("deleted record", "record_id", rec.ID)
		}
	}

	// Cleanup phase: confirmed tombstones normally never exist because
	// the deletion phase hard-deletes; this sweeps up after alternate
	// code paths. Cleanup errors do not fail the pass.
	if purged, err := s.records.PurgeConfirmedTombstones(ctx); err != nil {
		s.logger.Warn("failed to purge confirmed tombstones", "error", err)
	} else if purged > 0 {
		s.logger.Info("purged confirmed tombstones", "count", purged)
	}

	// The pass is an overall failure only when a store read failed and
	// no item-level work succeeded. Item-level failures stay inside a
	// successful result.
	if readFailed && result.Uploaded == 0 && result.Deleted == 0 {
		return nil, errors.New(firstError)
	}

	if result.Failed > 0 {
		result.ErrorMessage = firstError
	}

	s.logger.Info("sync pass completed",
		"uploaded", result.Uploaded,
		"deleted", result.Deleted,
		"failed", result.Failed)

	return result, nil
}

// DownloadAndMerge pulls the remote record set selected by scope and
// merges it into the local cache. Per incoming remote record:
// a local tombstone wins (pending deletions are never resurrected), a
// locally absent record is inserted as synced, and a locally present
// record is overwritten only if its local copy is already synced —
// pending local state wins until its own upload flips it.
func (s *service) DownloadAndMerge(ctx context.Context, scope clientapi.Scope) (int, error) {
	if !s.checker.IsOnline() {
		return 0, ErrOffline
	}

	authed, err := s.auth.IsAuthenticated(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check authentication: %w", err)
	}
	if !authed {
		return 0, ErrNotAuthenticated
	}

	remoteRecords, err := s.remote.List(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("failed to list remote records: %w", err)
	}

	now := s.now().UnixMilli()
	accepted := make([]*models.StoredRecord, 0, len(remoteRecords))

	for _, rec := range remoteRecords {
		tombstoned, err := s.records.IsTombstoned(ctx, rec.ID)
		if err != nil {
			return 0, fmt.Errorf("failed to check tombstone for %s: %w", rec.ID, err)
		}
		if tombstoned {
			s.logger.Debug("skipping tombstoned record", "record_id", rec.ID)
			continue
		}

		local, err := s.records.Get(ctx, rec.ID)
		if err != nil && !errors.Is(err, storage.ErrRecordNotFound) {
			return 0, fmt.Errorf("failed to get local record %s: %w", rec.ID, err)
		}
		if local != nil && !local.Synced {
			s.logger.Debug("skipping record with pending local state", "record_id", rec.ID)
			continue
		}

		accepted = append(accepted, models.NewStoredRecord(rec, true, now))
	}

	if err := s.records.UpsertMany(ctx, accepted); err != nil {
		return 0, fmt.Errorf("failed to merge remote records: %w", err)
	}

	s.logger.Info("merged remote records",
		"pulled", len(remoteRecords),
		"accepted", len(accepted))

	return len(accepted), nil
}

// PendingCount returns the number of records awaiting upload or deletion
func (s *service) PendingCount(ctx context.Context) (int, error) {
	count, err := s.records.CountPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending records: %w", err)
	}
	return count, nil
}
