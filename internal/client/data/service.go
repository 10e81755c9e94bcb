// Package data serves reads and writes for record callers. Reads are
// always assembled from the local cache so that pending local state is
// reflected; when online, a best-effort remote refresh runs first and
// its errors are logged, never surfaced to the reader.
package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	clientapi "github.com/waymark-app/waymark/internal/client/api"
	"github.com/waymark-app/waymark/internal/client/netcheck"
	"github.com/waymark-app/waymark/internal/client/storage"
	syncsvc "github.com/waymark-app/waymark/internal/client/sync"
	"github.com/waymark-app/waymark/internal/models"
)

// Service is the record-facing API for UI-level callers
type Service interface {
	// Add persists a new record, uploading it immediately when online.
	// A missing id is assigned a fresh UUID.
	Add(ctx context.Context, rec models.Record) (*models.StoredRecord, error)

	// Delete removes a record: soft-deleted locally first, then
	// confirmed remotely right away when online.
	Delete(ctx context.Context, id string) error

	// ListAll returns public records merged with the owner's own
	ListAll(ctx context.Context, ownerID string) ([]models.Record, error)

	// ListOwn returns the owner's records
	ListOwn(ctx context.Context, ownerID string) ([]models.Record, error)

	// ListFiltered returns the owner's records matching the filter
	ListFiltered(ctx context.Context, ownerID string, f storage.Filter) ([]models.Record, error)

	// PendingCount returns the number of records awaiting sync
	PendingCount(ctx context.Context) (int, error)
}

type service struct {
	records storage.RecordStore
	remote  clientapi.Remote
	syncer  syncsvc.Service
	checker netcheck.Checker
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates a new data service
func NewService(records storage.RecordStore, remote clientapi.Remote, syncer syncsvc.Service, checker netcheck.Checker, logger *slog.Logger) Service {
	return &service{
		records: records,
		remote:  remote,
		syncer:  syncer,
		checker: checker,
		logger:  logger,
		now:     time.Now,
	}
}

// Add persists a new record. Online, the record is created remotely
// first and cached as synced; if the remote create fails, or the client
// is offline, the record is cached as pending and picked up by the next
// sync pass.
func (s *service) Add(ctx context.Context, rec models.Record) (*models.StoredRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	now := s.now().UnixMilli()
	if rec.CreatedAt == 0 {
		rec.CreatedAt = now
	}

	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid record: %w", err)
	}

	synced := false
	if s.checker.IsOnline() {
		if _, err := s.remote.Create(ctx, rec); err != nil {
			s.logger.Warn("remote create failed, caching record as pending",
				"record_id", rec.ID, "error", err)
		} else {
			synced = true
		}
	}

	stored := models.NewStoredRecord(rec, synced, now)
	if err := s.records.Upsert(ctx, stored); err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	return stored, nil
}

// Delete soft-deletes the record locally as the commit point, then
// attempts the remote deletion right away when online. If the remote
// call fails the tombstone stays pending and is retried by the next
// sync pass.
func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.records.SoftDelete(ctx, id, s.now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	if !s.checker.IsOnline() {
		return nil
	}

	err := s.remote.Delete(ctx, id)
	if err != nil && !errors.Is(err, clientapi.ErrNotFound) {
		s.logger.Warn("remote delete failed, tombstone kept for next sync",
			"record_id", id, "error", err)
		return nil
	}

	if err := s.records.HardDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to remove confirmed tombstone: %w", err)
	}

	return nil
}

// ListAll returns public records merged with the owner's own, newest
// first.
func (s *service) ListAll(ctx context.Context, ownerID string) ([]models.Record, error) {
	s.refresh(ctx, clientapi.Scope{PublicOnly: true})
	s.refresh(ctx, clientapi.Scope{OwnerID: ownerID})

	public, err := s.records.ListPublicLive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list public records: %w", err)
	}
	own, err := s.records.ListLive(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list own records: %w", err)
	}

	return mergeByID(public, own), nil
}

// ListOwn returns the owner's records, newest first
func (s *service) ListOwn(ctx context.Context, ownerID string) ([]models.Record, error) {
	s.refresh(ctx, clientapi.Scope{OwnerID: ownerID})

	records, err := s.records.ListLive(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

// ListFiltered returns the owner's records matching the filter. The
// filter runs against the local cache, so unsynced local records are
// included too.
func (s *service) ListFiltered(ctx context.Context, ownerID string, f storage.Filter) ([]models.Record, error) {
	s.refresh(ctx, clientapi.Scope{OwnerID: ownerID})

	records, err := s.records.ListFiltered(ctx, ownerID, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list filtered records: %w", err)
	}
	return records, nil
}

// PendingCount returns the number of records awaiting sync
func (s *service) PendingCount(ctx context.Context) (int, error) {
	return s.syncer.PendingCount(ctx)
}

// refresh pulls remote state into the cache, best effort. A failed
// refresh never fails the read: the caller still gets consistent local
// data.
func (s *service) refresh(ctx context.Context, scope clientapi.Scope) {
	if !s.checker.IsOnline() {
		return
	}

	if _, err := s.syncer.DownloadAndMerge(ctx, scope); err != nil {
		s.logger.Warn("remote refresh failed, serving local cache",
			"public_only", scope.PublicOnly, "error", err)
	}
}

// mergeByID combines record sets, dropping duplicate ids, ordered by
// created_at descending.
func mergeByID(sets ...[]models.Record) []models.Record {
	seen := make(map[string]struct{})
	var merged []models.Record
	for _, set := range sets {
		for _, rec := range set {
			if _, ok := seen[rec.ID]; ok {
				continue
			}
			seen[rec.ID] = struct{}{}
			merged = append(merged, rec)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt > merged[j].CreatedAt
	})

	return merged
}
