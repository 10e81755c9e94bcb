package data

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/waymark-app/waymark/internal/client/api"
	"github.com/waymark-app/waymark/internal/client/netcheck"
	"github.com/waymark-app/waymark/internal/client/storage"
	syncsvc "github.com/waymark-app/waymark/internal/client/sync"
	"github.com/waymark-app/waymark/internal/models"
)

var (
	online  = netcheck.Func(func() bool { return true })
	offline = netcheck.Func(func() bool { return false })
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validRecord() models.Record {
	return models.Record{
		OwnerID:    "user-1",
		Title:      "Cafe",
		Latitude:   52.52,
		Longitude:  13.405,
		Visibility: models.VisibilityPrivate,
	}
}

func newStoreMock(entries map[string]*models.StoredRecord) *storage.RecordStoreMock {
	return &storage.RecordStoreMock{
		UpsertFunc: func(ctx context.Context, rec *models.StoredRecord) error {
			entries[rec.ID] = rec
			return nil
		},
		SoftDeleteFunc: func(ctx context.Context, id string, ts int64) error {
			rec, ok := entries[id]
			if !ok {
				return storage.ErrRecordNotFound
			}
			rec.Deleted = true
			rec.Synced = false
			rec.LastModified = ts
			return nil
		},
		HardDeleteFunc: func(ctx context.Context, id string) error {
			delete(entries, id)
			return nil
		},
		ListLiveFunc: func(ctx context.Context, ownerID string) ([]models.Record, error) {
			var result []models.Record
			for _, rec := range entries {
				if rec.Deleted {
					continue
				}
				if ownerID == "" || rec.OwnerID == ownerID {
					result = append(result, rec.Record)
				}
			}
			return result, nil
		},
		ListPublicLiveFunc: func(ctx context.Context) ([]models.Record, error) {
			var result []models.Record
			for _, rec := range entries {
				if !rec.Deleted && rec.Visibility == models.VisibilityPublic {
					result = append(result, rec.Record)
				}
			}
			return result, nil
		},
		ListFilteredFunc: func(ctx context.Context, ownerID string, f storage.Filter) ([]models.Record, error) {
			var result []models.Record
			for _, rec := range entries {
				if rec.Deleted || rec.OwnerID != ownerID {
					continue
				}
				if f.Visibility != nil && rec.Visibility != *f.Visibility {
					continue
				}
				result = append(result, rec.Record)
			}
			return result, nil
		},
	}
}

func noopSyncer() *syncsvc.ServiceMock {
	return &syncsvc.ServiceMock{
		DownloadAndMergeFunc: func(ctx context.Context, scope clientapi.Scope) (int, error) {
			return 0, nil
		},
		PendingCountFunc: func(ctx context.Context) (int, error) {
			return 0, nil
		},
	}
}

func TestAdd_OnlineUploadsImmediately(t *testing.T) {
	entries := map[string]*models.StoredRecord{}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{
		CreateFunc: func(ctx context.Context, rec models.Record) (*models.Record, error) {
			return &rec, nil
		},
	}

	service := NewService(mockStore, mockRemote, noopSyncer(), online, testLogger())

	stored, err := service.Add(context.Background(), validRecord())

	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID, "missing id must be generated")
	assert.NotZero(t, stored.CreatedAt)
	assert.True(t, stored.Synced)
	assert.Len(t, mockRemote.CreateCalls(), 1)
	require.Contains(t, entries, stored.ID)
	assert.Same(t, entries[stored.ID], stored, "Add must return the cached record")
}

func TestAdd_OfflineCachesAsPending(t *testing.T) {
	entries := map[string]*models.StoredRecord{}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{}

	service := NewService(mockStore, mockRemote, noopSyncer(), offline, testLogger())

	stored, err := service.Add(context.Background(), validRecord())

	require.NoError(t, err)
	assert.False(t, stored.Synced)
	assert.Empty(t, mockRemote.CreateCalls())
}

func TestAdd_RemoteFailureDegradesToPending(t *testing.T) {
	entries := map[string]*models.StoredRecord{}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{
		CreateFunc: func(ctx context.Context, rec models.Record) (*models.Record, error) {
			return nil, errors.New("server down")
		},
	}

	service := NewService(mockStore, mockRemote, noopSyncer(), online, testLogger())

	stored, err := service.Add(context.Background(), validRecord())

	require.NoError(t, err, "remote failure must not fail the add")
	assert.False(t, stored.Synced)
	assert.Contains(t, entries, stored.ID)
}

func TestAdd_InvalidRecordRejected(t *testing.T) {
	entries := map[string]*models.StoredRecord{}
	service := NewService(newStoreMock(entries), &clientapi.RemoteMock{}, noopSyncer(), offline, testLogger())

	rec := validRecord()
	rec.Latitude = 91

	_, err := service.Add(context.Background(), rec)
	require.Error(t, err)
	assert.Empty(t, entries)
}

func TestAdd_KeepsProvidedIDAndTimestamp(t *testing.T) {
	entries := map[string]*models.StoredRecord{}
	service := NewService(newStoreMock(entries), &clientapi.RemoteMock{}, noopSyncer(), offline, testLogger())

	rec := validRecord()
	rec.ID = "rec-fixed"
	rec.CreatedAt = 12345

	stored, err := service.Add(context.Background(), rec)

	require.NoError(t, err)
	assert.Equal(t, "rec-fixed", stored.ID)
	assert.Equal(t, int64(12345), stored.CreatedAt)
}

func TestDelete_OnlineConfirmsImmediately(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": models.NewStoredRecord(models.Record{ID: "rec-1", OwnerID: "user-1"}, true, 100),
	}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{
		DeleteFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}

	service := NewService(mockStore, mockRemote, noopSyncer(), online, testLogger())

	require.NoError(t, service.Delete(context.Background(), "rec-1"))
	assert.NotContains(t, entries, "rec-1")
}

func TestDelete_OfflineLeavesTombstone(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": models.NewStoredRecord(models.Record{ID: "rec-1", OwnerID: "user-1"}, true, 100),
	}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{}

	service := NewService(mockStore, mockRemote, noopSyncer(), offline, testLogger())

	require.NoError(t, service.Delete(context.Background(), "rec-1"))
	require.Contains(t, entries, "rec-1")
	assert.True(t, entries["rec-1"].Deleted)
	assert.False(t, entries["rec-1"].Synced)
	assert.Empty(t, mockRemote.DeleteCalls())
}

func TestDelete_RemoteFailureKeepsTombstone(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": models.NewStoredRecord(models.Record{ID: "rec-1", OwnerID: "user-1"}, true, 100),
	}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{
		DeleteFunc: func(ctx context.Context, id string) error {
			return errors.New("server down")
		},
	}

	service := NewService(mockStore, mockRemote, noopSyncer(), online, testLogger())

	require.NoError(t, service.Delete(context.Background(), "rec-1"), "remote failure must not fail the delete")
	require.Contains(t, entries, "rec-1")
	assert.True(t, entries["rec-1"].Deleted)
}

func TestDelete_MissingRemotelyStillConfirmed(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": models.NewStoredRecord(models.Record{ID: "rec-1", OwnerID: "user-1"}, false, 100),
	}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{
		DeleteFunc: func(ctx context.Context, id string) error {
			return clientapi.ErrNotFound
		},
	}

	service := NewService(mockStore, mockRemote, noopSyncer(), online, testLogger())

	require.NoError(t, service.Delete(context.Background(), "rec-1"))
	assert.NotContains(t, entries, "rec-1")
}

func TestDelete_NotFoundLocally(t *testing.T) {
	service := NewService(newStoreMock(map[string]*models.StoredRecord{}), &clientapi.RemoteMock{}, noopSyncer(), offline, testLogger())

	err := service.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestListAll_MergesPublicAndOwnWithoutDuplicates(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": models.NewStoredRecord(models.Record{
			ID: "rec-1", OwnerID: "user-1", Visibility: models.VisibilityPublic, CreatedAt: 100,
		}, true, 100),
		"rec-2": models.NewStoredRecord(models.Record{
			ID: "rec-2", OwnerID: "user-1", Visibility: models.VisibilityPrivate, CreatedAt: 300,
		}, true, 300),
		"rec-3": models.NewStoredRecord(models.Record{
			ID: "rec-3", OwnerID: "user-2", Visibility: models.VisibilityPublic, CreatedAt: 200,
		}, true, 200),
		"rec-4": models.NewStoredRecord(models.Record{
			ID: "rec-4", OwnerID: "user-2", Visibility: models.VisibilityPrivate, CreatedAt: 400,
		}, true, 400),
	}
	mockStore := newStoreMock(entries)

	service := NewService(mockStore, &clientapi.RemoteMock{}, noopSyncer(), offline, testLogger())

	records, err := service.ListAll(context.Background(), "user-1")

	require.NoError(t, err)
	var ids []string
	for _, rec := range records {
		ids = append(ids, rec.ID)
	}
	// rec-4 is another user's private record; rec-1 appears once
	// despite matching both the public and the own set.
	assert.Equal(t, []string{"rec-2", "rec-3", "rec-1"}, ids)
}

func TestListAll_RefreshFailureServesLocalCache(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": models.NewStoredRecord(models.Record{
			ID: "rec-1", OwnerID: "user-1", Visibility: models.VisibilityPrivate, CreatedAt: 100,
		}, false, 100),
	}
	mockStore := newStoreMock(entries)
	mockSyncer := &syncsvc.ServiceMock{
		DownloadAndMergeFunc: func(ctx context.Context, scope clientapi.Scope) (int, error) {
			return 0, errors.New("server down")
		},
	}

	service := NewService(mockStore, &clientapi.RemoteMock{}, mockSyncer, online, testLogger())

	records, err := service.ListAll(context.Background(), "user-1")

	require.NoError(t, err, "refresh errors must not surface to readers")
	require.Len(t, records, 1)
	assert.Equal(t, "rec-1", records[0].ID)
	assert.Len(t, mockSyncer.DownloadAndMergeCalls(), 2)
}

func TestListOwn_RefreshesOnlyWhenOnline(t *testing.T) {
	mockStore := newStoreMock(map[string]*models.StoredRecord{})
	mockSyncer := noopSyncer()

	service := NewService(mockStore, &clientapi.RemoteMock{}, mockSyncer, offline, testLogger())

	_, err := service.ListOwn(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, mockSyncer.DownloadAndMergeCalls())
}

func TestListFiltered(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": models.NewStoredRecord(models.Record{
			ID: "rec-1", OwnerID: "user-1", Visibility: models.VisibilityPublic, CreatedAt: 100,
		}, true, 100),
		"rec-2": models.NewStoredRecord(models.Record{
			ID: "rec-2", OwnerID: "user-1", Visibility: models.VisibilityPrivate, CreatedAt: 200,
		}, true, 200),
	}
	mockStore := newStoreMock(entries)

	service := NewService(mockStore, &clientapi.RemoteMock{}, noopSyncer(), offline, testLogger())

	public := models.VisibilityPublic
	records, err := service.ListFiltered(context.Background(), "user-1", storage.Filter{Visibility: &public})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "rec-1", records[0].ID)
}

func TestPendingCount_DelegatesToSyncer(t *testing.T) {
	mockSyncer := &syncsvc.ServiceMock{
		PendingCountFunc: func(ctx context.Context) (int, error) {
			return 7, nil
		},
	}

	service := NewService(newStoreMock(map[string]*models.StoredRecord{}), &clientapi.RemoteMock{}, mockSyncer, offline, testLogger())

	count, err := service.PendingCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

