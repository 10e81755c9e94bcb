package storage

import (
	"context"

	"github.com/waymark-app/waymark/internal/models"
)

//go:generate moq -out records_mock.go . RecordStore

// Filter narrows ListFiltered results. Nil fields are unconstrained.
// Bounds are epoch millis and inclusive.
type Filter struct {
	Visibility *models.Visibility
	StartDate  *int64
	EndDate    *int64
}

// RecordStore is the durable local cache of records plus their sync state.
// Implementations must be safe for concurrent use: the query facade's
// opportunistic refresh and the sync reconciler legitimately run at
// overlapping times. Every call is committed independently, so an
// interrupted caller never leaves the store half-written.
type RecordStore interface {
	// Upsert inserts or replaces a record by id. Calling it repeatedly
	// with the same id is an idempotent overwrite.
	Upsert(ctx context.Context, rec *models.StoredRecord) error

	// UpsertMany is the batch form of Upsert, applied in one transaction.
	// Used when merging a page of remote results.
	UpsertMany(ctx context.Context, recs []*models.StoredRecord) error

	// Get returns a record by id, tombstones included.
	// Returns ErrRecordNotFound if the id is absent.
	Get(ctx context.Context, id string) (*models.StoredRecord, error)

	// ListLive returns non-deleted records ordered by created_at
	// descending. An empty ownerID returns records for all owners.
	ListLive(ctx context.Context, ownerID string) ([]models.Record, error)

	// ListPublicLive returns non-deleted public records of any owner,
	// ordered by created_at descending.
	ListPublicLive(ctx context.Context) ([]models.Record, error)

	// ListFiltered returns the owner's non-deleted records matching all
	// set filter fields, ordered by created_at descending.
	ListFiltered(ctx context.Context, ownerID string, f Filter) ([]models.Record, error)

	// ListPendingUpload returns records awaiting upload
	// (not synced, not deleted).
	ListPendingUpload(ctx context.Context) ([]*models.StoredRecord, error)

	// ListPendingDeletion returns tombstones awaiting remote
	// confirmation (deleted, not synced).
	ListPendingDeletion(ctx context.Context) ([]*models.StoredRecord, error)

	// LiveIDs returns the set of non-deleted record ids
	LiveIDs(ctx context.Context) (map[string]struct{}, error)

	// IsTombstoned reports whether a record with the id exists and is
	// marked deleted, regardless of its sync state.
	IsTombstoned(ctx context.Context, id string) (bool, error)

	// MarkSynced flips a record to synced.
	// Returns ErrRecordNotFound if the id is absent.
	MarkSynced(ctx context.Context, id string) error

	// SoftDelete turns a record into a pending tombstone: deleted,
	// unsynced, last_modified set to ts. The record disappears from all
	// live queries but stays until the remote deletion is confirmed.
	SoftDelete(ctx context.Context, id string, ts int64) error

	// HardDelete physically removes a record
	HardDelete(ctx context.Context, id string) error

	// PurgeConfirmedTombstones removes records that are both deleted and
	// synced. Returns the number of rows removed.
	PurgeConfirmedTombstones(ctx context.Context) (int, error)

	// CountPending returns the number of records awaiting upload plus
	// tombstones awaiting deletion.
	CountPending(ctx context.Context) (int, error)

	// Clear removes all records (logout, full re-sync)
	Clear(ctx context.Context) error
}
