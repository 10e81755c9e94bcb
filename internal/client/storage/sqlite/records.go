package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/waymark-app/waymark/internal/client/storage"
	"github.com/waymark-app/waymark/internal/models"
)

const recordColumns = `id, owner_id, title, description, latitude, longitude,
	image_ref, visibility, created_at, synced, deleted, last_modified`

var _ storage.RecordStore = (*Store)(nil)

// Upsert inserts or replaces a record by id. Replacing is unconditional
// on id, so repeated calls with the same record are idempotent.
func (s *Store) Upsert(ctx context.Context, rec *models.StoredRecord) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	query := `
		INSERT INTO records (
			id, owner_id, title, description, latitude, longitude,
			image_ref, visibility, created_at, synced, deleted, last_modified
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			title = excluded.title,
			description = excluded.description,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			image_ref = excluded.image_ref,
			visibility = excluded.visibility,
			created_at = excluded.created_at,
			synced = excluded.synced,
			deleted = excluded.deleted,
			last_modified = excluded.last_modified
	`

	_, err := s.db.ExecContext(ctx, query,
		rec.ID,
		rec.OwnerID,
		rec.Title,
		rec.Description,
		rec.Latitude,
		rec.Longitude,
		nullableString(rec.ImageRef),
		string(rec.Visibility),
		rec.CreatedAt,
		boolToInt(rec.Synced),
		boolToInt(rec.Deleted),
		rec.LastModified,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert record: %w", err)
	}

	return nil
}

// UpsertMany applies Upsert to a batch of records in one transaction.
// Used when merging a page of remote results.
func (s *Store) UpsertMany(ctx context.Context, recs []*models.StoredRecord) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if len(recs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO records (
			id, owner_id, title, description, latitude, longitude,
			image_ref, visibility, created_at, synced, deleted, last_modified
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			title = excluded.title,
			description = excluded.description,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			image_ref = excluded.image_ref,
			visibility = excluded.visibility,
			created_at = excluded.created_at,
			synced = excluded.synced,
			deleted = excluded.deleted,
			last_modified = excluded.last_modified
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range recs {
		_, err := stmt.ExecContext(ctx,
			rec.ID,
			rec.OwnerID,
			rec.Title,
			rec.Description,
			rec.Latitude,
			rec.Longitude,
			nullableString(rec.ImageRef),
			string(rec.Visibility),
			rec.CreatedAt,
			boolToInt(rec.Synced),
			boolToInt(rec.Deleted),
			rec.LastModified,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert record %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch upsert: %w", err)
	}

	return nil
}

// Get returns a record by id, tombstones included
func (s *Store) Get(ctx context.Context, id string) (*models.StoredRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	query := `SELECT ` + recordColumns + ` FROM records WHERE id = ?`
	row := s.db.QueryRowContext(ctx, query, id)

	rec, err := scanStoredRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return rec, nil
}

// ListLive returns non-deleted records ordered by created_at descending.
// An empty ownerID returns records for all owners.
func (s *Store) ListLive(ctx context.Context, ownerID string) ([]models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	query := `SELECT ` + recordColumns + ` FROM records
		WHERE deleted = 0 AND (? = '' OR owner_id = ?)
		ORDER BY created_at DESC`

	return s.queryRecords(ctx, query, ownerID, ownerID)
}

// ListPublicLive returns non-deleted public records of any owner
func (s *Store) ListPublicLive(ctx context.Context) ([]models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	query := `SELECT ` + recordColumns + ` FROM records
		WHERE deleted = 0 AND visibility = 'public'
		ORDER BY created_at DESC`

	return s.queryRecords(ctx, query)
}

// ListFiltered returns the owner's non-deleted records matching all set
// filter fields. Nil fields are unconstrained; date bounds are inclusive.
func (s *Store) ListFiltered(ctx context.Context, ownerID string, f storage.Filter) ([]models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	query := `SELECT ` + recordColumns + ` FROM records
		WHERE owner_id = ?
		AND deleted = 0
		AND (? IS NULL OR visibility = ?)
		AND (? IS NULL OR created_at >= ?)
		AND (? IS NULL OR created_at <= ?)
		ORDER BY created_at DESC`

	var visibility any
	if f.Visibility != nil {
		visibility = string(*f.Visibility)
	}
	var startDate, endDate any
	if f.StartDate != nil {
		startDate = *f.StartDate
	}
	if f.EndDate != nil {
		endDate = *f.EndDate
	}

	return s.queryRecords(ctx, query,
		ownerID,
		visibility, visibility,
		startDate, startDate,
		endDate, endDate,
	)
}

// ListPendingUpload returns records awaiting upload
func (s *Store) ListPendingUpload(ctx context.Context) ([]*models.StoredRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	query := `SELECT ` + recordColumns + ` FROM records WHERE synced = 0 AND deleted = 0`
	return s.queryStoredRecords(ctx, query)
}

// ListPendingDeletion returns tombstones awaiting remote confirmation
func (s *Store) ListPendingDeletion(ctx context.Context) ([]*models.StoredRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	query := `SELECT ` + recordColumns + ` FROM records WHERE deleted = 1 AND synced = 0`
	return s.queryStoredRecords(ctx, query)
}

// LiveIDs returns the set of non-deleted record ids
func (s *Store) LiveIDs(ctx context.Context) (map[string]struct{}, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id FROM records WHERE deleted = 0`)
	if err != nil {
		return nil, fmt.Errorf("failed to select live ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate live ids: %w", err)
	}

	return ids, nil
}

// IsTombstoned reports whether a record exists and is marked deleted,
// regardless of its sync state.
func (s *Store) IsTombstoned(ctx context.Context, id string) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	var count int
	query := `SELECT COUNT(*) FROM records WHERE id = ? AND deleted = 1`
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check tombstone: %w", err)
	}

	return count > 0, nil
}

// MarkSynced flips a record to synced after its upload was confirmed
func (s *Store) MarkSynced(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	res, err := s.db.ExecContext(ctx, `UPDATE records SET synced = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark record synced: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}

// SoftDelete turns a record into a pending tombstone
func (s *Store) SoftDelete(ctx context.Context, id string, ts int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	query := `UPDATE records SET deleted = 1, synced = 0, last_modified = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, query, ts, id)
	if err != nil {
		return fmt.Errorf("failed to soft delete record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}

// HardDelete physically removes a record. Called only after the remote
// deletion is confirmed, or as an explicit force-purge.
func (s *Store) HardDelete(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to hard delete record: %w", err)
	}

	return nil
}

// PurgeConfirmedTombstones removes records that are both deleted and
// synced. Normally the reconciler hard-deletes on remote confirmation,
// so this cleans up after alternate code paths only.
func (s *Store) PurgeConfirmedTombstones(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE deleted = 1 AND synced = 1`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge tombstones: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(affected), nil
}

// CountPending returns the number of records awaiting upload plus
// tombstones awaiting deletion.
func (s *Store) CountPending(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int
	query := `SELECT COUNT(*) FROM records WHERE synced = 0`
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending records: %w", err)
	}

	return count, nil
}

// Clear removes all records (logout, full re-sync)
func (s *Store) Clear(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}

	return nil
}

func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]models.Record, error) {
	stored, err := s.queryStoredRecords(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	records := make([]models.Record, 0, len(stored))
	for _, rec := range stored {
		records = append(records, rec.Record)
	}
	return records, nil
}

func (s *Store) queryStoredRecords(ctx context.Context, query string, args ...any) ([]*models.StoredRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	var records []*models.StoredRecord
	for rows.Next() {
		rec, err := scanStoredRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStoredRecord(row rowScanner) (*models.StoredRecord, error) {
	var (
		rec        models.StoredRecord
		imageRef   sql.NullString
		visibility string
		synced     int
		deleted    int
	)

	err := row.Scan(
		&rec.ID,
		&rec.OwnerID,
		&rec.Title,
		&rec.Description,
		&rec.Latitude,
		&rec.Longitude,
		&imageRef,
		&visibility,
		&rec.CreatedAt,
		&synced,
		&deleted,
		&rec.LastModified,
	)
	if err != nil {
		return nil, err
	}

	if imageRef.Valid {
		rec.ImageRef = &imageRef.String
	}
	rec.Visibility = models.Visibility(visibility)
	rec.Synced = synced != 0
	rec.Deleted = deleted != 0

	return &rec, nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
