package models

import (
	"errors"
	"fmt"
)

// Visibility controls who can see a record.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// ParseVisibility validates a raw visibility string
func ParseVisibility(s string) (Visibility, error) {
	switch Visibility(s) {
	case VisibilityPublic:
		return VisibilityPublic, nil
	case VisibilityPrivate:
		return VisibilityPrivate, nil
	default:
		return "", fmt.Errorf("invalid visibility %q", s)
	}
}

// Record represents a user-created geotagged point of interest
type Record struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	ImageRef    *string    `json:"image_ref,omitempty"`
	Visibility  Visibility `json:"visibility"`
	CreatedAt   int64      `json:"created_at"` // epoch millis
}

// Validate checks that a record is well-formed before it is persisted
func (r *Record) Validate() error {
	if r.OwnerID == "" {
		return errors.New("record owner_id is required")
	}
	if r.Title == "" {
		return errors.New("record title is required")
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range", r.Latitude)
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range", r.Longitude)
	}
	if _, err := ParseVisibility(string(r.Visibility)); err != nil {
		return err
	}
	return nil
}

// StoredRecord is a Record together with its local sync state.
// The sync state never leaves the local cache: it is not part of the
// remote wire format.
type StoredRecord struct {
	Record

	// Synced is true iff the remote store has an up-to-date copy
	Synced bool `json:"synced"`

	// Deleted marks a pending tombstone: soft-deleted locally,
	// remote deletion not yet confirmed
	Deleted bool `json:"deleted"`

	// LastModified is a local bookkeeping timestamp (epoch millis).
	// It is never used for conflict resolution.
	LastModified int64 `json:"last_modified"`
}

// NewStoredRecord wraps a record for local persistence
func NewStoredRecord(r Record, synced bool, now int64) *StoredRecord {
	return &StoredRecord{
		Record:       r,
		Synced:       synced,
		Deleted:      false,
		LastModified: now,
	}
}

// PendingUpload reports whether the record is a local create awaiting upload
func (s *StoredRecord) PendingUpload() bool {
	return !s.Synced && !s.Deleted
}

// PendingDeletion reports whether the record is a tombstone awaiting
// remote confirmation
func (s *StoredRecord) PendingDeletion() bool {
	return s.Deleted && !s.Synced
}
