package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/waymark-app/waymark/internal/client/api"
	"github.com/waymark-app/waymark/internal/client/auth"
	"github.com/waymark-app/waymark/internal/client/netcheck"
	"github.com/waymark-app/waymark/internal/client/storage"
	"github.com/waymark-app/waymark/internal/models"
)

var (
	online  = netcheck.Func(func() bool { return true })
	offline = netcheck.Func(func() bool { return false })
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authedService() *auth.ServiceMock {
	return &auth.ServiceMock{
		IsAuthenticatedFunc: func(ctx context.Context) (bool, error) {
			return true, nil
		},
	}
}

func testRecord(id string, synced, deleted bool) *models.StoredRecord {
	return &models.StoredRecord{
		Record: models.Record{
			ID:         id,
			OwnerID:    "user-1",
			Title:      "Record " + id,
			Latitude:   52.52,
			Longitude:  13.405,
			Visibility: models.VisibilityPrivate,
			CreatedAt:  100,
		},
		Synced:       synced,
		Deleted:      deleted,
		LastModified: 100,
	}
}

// newStoreMock builds a RecordStoreMock backed by the given map so
// per-item commits are observable mid-pass.
func newStoreMock(entries map[string]*models.StoredRecord) *storage.RecordStoreMock {
	return &storage.RecordStoreMock{
		ListPendingUploadFunc: func(ctx context.Context) ([]*models.StoredRecord, error) {
			var result []*models.StoredRecord
			for _, rec := range entries {
				if !rec.Synced && !rec.Deleted {
					result = append(result, rec)
				}
			}
			sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
			return result, nil
		},
		ListPendingDeletionFunc: func(ctx context.Context) ([]*models.StoredRecord, error) {
			var result []*models.StoredRecord
			for _, rec := range entries {
				if rec.Deleted && !rec.Synced {
					result = append(result, rec)
				}
			}
			sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
			return result, nil
		},
		MarkSyncedFunc: func(ctx context.Context, id string) error {
			rec, ok := entries[id]
			if !ok {
				return storage.ErrRecordNotFound
			}
			rec.Synced = true
			return nil
		},
		HardDeleteFunc: func(ctx context.Context, id string) error {
			delete(entries, id)
			return nil
		},
		PurgeConfirmedTombstonesFunc: func(ctx context.Context) (int, error) {
			purged := 0
			for id, rec := range entries {
				if rec.Deleted && rec.Synced {
					delete(entries, id)
					purged++
				}
			}
			return purged, nil
		},
		IsTombstonedFunc: func(ctx context.Context, id string) (bool, error) {
			rec, ok := entries[id]
			return ok && rec.Deleted, nil
		},
		GetFunc: func(ctx context.Context, id string) (*models.StoredRecord, error) {
			rec, ok := entries[id]
			if !ok {
				return nil, storage.ErrRecordNotFound
			}
			return rec, nil
		},
		UpsertManyFunc: func(ctx context.Context, recs []*models.StoredRecord) error {
			for _, rec := range recs {
				entries[rec.ID] = rec
			}
			return nil
		},
		CountPendingFunc: func(ctx context.Context) (int, error) {
			count := 0
			for _, rec := range entries {
				if !rec.Synced {
					count++
				}
			}
			return count, nil
		},
	}
}

func TestSyncAll_Offline(t *testing.T) {
	mockStore := newStoreMock(map[string]*models.StoredRecord{})
	mockRemote := &clientapi.RemoteMock{}

	service := NewService(mockRemote, mockStore, authedService(), offline, testLogger())

	result, err := service.SyncAll(context.Background())

	require.ErrorIs(t, err, ErrOffline)
	assert.Nil(t, result)
	assert.Empty(t, mockRemote.CreateCalls())
	assert.Empty(t, mockStore.ListPendingUploadCalls())
}

func TestSyncAll_NotAuthenticated(t *testing.T) {
	mockStore := newStoreMock(map[string]*models.StoredRecord{})
	mockRemote := &clientapi.RemoteMock{}
	mockAuth := &auth.ServiceMock{
		IsAuthenticatedFunc: func(ctx context.Context) (bool, error) {
			return false, nil
		},
	}

	service := NewService(mockRemote, mockStore, mockAuth, online, testLogger())

	result, err := service.SyncAll(context.Background())

	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Nil(t, result)
	assert.Empty(t, mockStore.ListPendingUploadCalls())
}

func TestSyncAll_NothingPending(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": testRecord("rec-1", true, false),
	}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{}

	service := NewService(mockRemote, mockStore, authedService(), online, testLogger())

	result, err := service.SyncAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, result.Uploaded)
	assert.Equal(t, 0, result.Deleted)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.ErrorMessage)
	assert.Empty(t, mockRemote.CreateCalls())
	assert.Empty(t, mockRemote.DeleteCalls())
}

func TestSyncAll_UploadsPendingRecords(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": testRecord("rec-1", false, false),
		"rec-2": testRecord("rec-2", false, false),
		"rec-3": testRecord("rec-3", true, false),
	}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{
		CreateFunc: func(ctx context.Context, rec models.Record) (*models.Record, error) {
			return &rec, nil
		},
	}

	service := NewService(mockRemote, mockStore, authedService(), online, testLogger())

	result, err := service.SyncAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Uploaded)
	assert.Equal(t, 0, result.Failed)
	assert.Len(t, mockRemote.CreateCalls(), 2)
	assert.True(t, entries["rec-1"].Synced)
	assert.True(t, entries["rec-2"].Synced)
}

func TestSyncAll_ConfirmsPendingDeletions(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": testRecord("rec-1", false, true),
		"rec-2": testRecord("rec-2", true, false),
	}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{
		DeleteFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}

	service := NewService(mockRemote, mockStore, authedService(), online, testLogger())

	result, err := service.SyncAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Deleted)
	assert.Len(t, mockRemote.DeleteCalls(), 1)
	assert.Equal(t, "rec-1", mockRemote.DeleteCalls()[0].ID)
	assert.NotContains(t, entries, "rec-1")
	assert.Contains(t, entries, "rec-2")
}

func TestSyncAll_DeletionMissingRemotelyStillConfirmed(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": testRecord("rec-1", false, true),
	}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{
		DeleteFunc: func(ctx context.Context, id string) error {
			return clientapi.ErrNotFound
		},
	}

	service := NewService(mockRemote, mockStore, authedService(), online, testLogger())

	result, err := service.SyncAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Deleted)
	assert.Equal(t, 0, result.Failed)
	assert.NotContains(t, entries, "rec-1")
}

func TestSyncAll_PartialFailureContinuesBatch(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": testRecord("rec-1", false, false),
		"rec-2": testRecord("rec-2", false, false),
		"rec-3": testRecord("rec-3", false, false),
	}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{
		CreateFunc: func(ctx context.Context, rec models.Record) (*models.Record, error) {
			if rec.ID == "rec-2" {
				return nil, errors.New("boom")
			}
			return &rec, nil
		},
	}

	service := NewService(mockRemote, mockStore, authedService(), online, testLogger())

	result, err := service.SyncAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Uploaded)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, result.ErrorMessage, "boom")
	assert.Len(t, mockRemote.CreateCalls(), 3)
	assert.True(t, entries["rec-1"].Synced)
	assert.False(t, entries["rec-2"].Synced)
	assert.True(t, entries["rec-3"].Synced)
}

func TestSyncAll_FirstErrorRetained(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": testRecord("rec-1", false, false),
		"rec-2": testRecord("rec-2", false, false),
	}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{
		CreateFunc: func(ctx context.Context, rec models.Record) (*models.Record, error) {
			return nil, errors.New("error for " + rec.ID)
		},
	}

	service := NewService(mockRemote, mockStore, authedService(), online, testLogger())

	result, err := service.SyncAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Failed)
	assert.Contains(t, result.ErrorMessage, "rec-1")
}

func TestSyncAll_AllRemoteCallsFailIsStillSuccess(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": testRecord("rec-1", false, false),
		"rec-2": testRecord("rec-2", false, true),
	}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{
		CreateFunc: func(ctx context.Context, rec models.Record) (*models.Record, error) {
			return nil, errors.New("server down")
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			return errors.New("server down")
		},
	}

	service := NewService(mockRemote, mockStore, authedService(), online, testLogger())

	result, err := service.SyncAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, result.Uploaded)
	assert.Equal(t, 0, result.Deleted)
	assert.Equal(t, 2, result.Failed)
	assert.NotEmpty(t, result.ErrorMessage)
	// Both items stay pending for the next pass.
	assert.False(t, entries["rec-1"].Synced)
	assert.Contains(t, entries, "rec-2")
}

func TestSyncAll_StoreReadFailureWithNoSuccessesFails(t *testing.T) {
	storeErr := errors.New("disk broken")
	mockStore := newStoreMock(map[string]*models.StoredRecord{})
	mockStore.ListPendingUploadFunc = func(ctx context.Context) ([]*models.StoredRecord, error) {
		return nil, storeErr
	}
	mockStore.ListPendingDeletionFunc = func(ctx context.Context) ([]*models.StoredRecord, error) {
		return nil, storeErr
	}
	mockRemote := &clientapi.RemoteMock{}

	service := NewService(mockRemote, mockStore, authedService(), online, testLogger())

	result, err := service.SyncAll(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk broken")
	assert.Nil(t, result)
}

func TestSyncAll_StoreReadFailureAfterSuccessesStaysSuccess(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": testRecord("rec-1", false, false),
	}
	mockStore := newStoreMock(entries)
	mockStore.ListPendingDeletionFunc = func(ctx context.Context) ([]*models.StoredRecord, error) {
		return nil, errors.New("disk broken")
	}
	mockRemote := &clientapi.RemoteMock{
		CreateFunc: func(ctx context.Context, rec models.Record) (*models.Record, error) {
			return &rec, nil
		},
	}

	service := NewService(mockRemote, mockStore, authedService(), online, testLogger())

	result, err := service.SyncAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Uploaded)
	assert.True(t, entries["rec-1"].Synced)
}

func TestSyncAll_CleanupFailureDoesNotFailPass(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": testRecord("rec-1", false, false),
	}
	mockStore := newStoreMock(entries)
	mockStore.PurgeConfirmedTombstonesFunc = func(ctx context.Context) (int, error) {
		return 0, errors.New("cleanup broken")
	}
	mockRemote := &clientapi.RemoteMock{
		CreateFunc: func(ctx context.Context, rec models.Record) (*models.Record, error) {
			return &rec, nil
		},
	}

	service := NewService(mockRemote, mockStore, authedService(), online, testLogger())

	result, err := service.SyncAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Uploaded)
	assert.Equal(t, 0, result.Failed)
}

func TestSyncAll_IdempotentSecondPass(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": testRecord("rec-1", false, false),
		"rec-2": testRecord("rec-2", false, true),
	}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{
		CreateFunc: func(ctx context.Context, rec models.Record) (*models.Record, error) {
			return &rec, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}

	service := NewService(mockRemote, mockStore, authedService(), online, testLogger())

	first, err := service.SyncAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Uploaded)
	assert.Equal(t, 1, first.Deleted)

	second, err := service.SyncAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Uploaded)
	assert.Equal(t, 0, second.Deleted)
	assert.Len(t, mockRemote.CreateCalls(), 1)
	assert.Len(t, mockRemote.DeleteCalls(), 1)
}

func TestDownloadAndMerge_Offline(t *testing.T) {
	mockStore := newStoreMock(map[string]*models.StoredRecord{})
	mockRemote := &clientapi.RemoteMock{}

	service := NewService(mockRemote, mockStore, authedService(), offline, testLogger())

	count, err := service.DownloadAndMerge(context.Background(), clientapi.Scope{PublicOnly: true})

	require.ErrorIs(t, err, ErrOffline)
	assert.Zero(t, count)
	assert.Empty(t, mockRemote.ListCalls())
}

func TestDownloadAndMerge_InsertsAbsentRecordsAsSynced(t *testing.T) {
	entries := map[string]*models.StoredRecord{}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{
		ListFunc: func(ctx context.Context, scope clientapi.Scope) ([]models.Record, error) {
			return []models.Record{
				testRecord("rec-1", false, false).Record,
				testRecord("rec-2", false, false).Record,
			}, nil
		},
	}

	service := NewService(mockRemote, mockStore, authedService(), online, testLogger())

	count, err := service.DownloadAndMerge(context.Background(), clientapi.Scope{OwnerID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Contains(t, entries, "rec-1")
	assert.True(t, entries["rec-1"].Synced)
	assert.False(t, entries["rec-1"].Deleted)
}

func TestDownloadAndMerge_TombstoneWins(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": testRecord("rec-1", false, true),
	}
	mockStore := newStoreMock(entries)
	mockRemote := &clientapi.RemoteMock{
		ListFunc: func(ctx context.Context, scope clientapi.Scope) ([]models.Record, error) {
			return []models.Record{testRecord("rec-1", false, false).Record}, nil
		},
	}

	service := NewService(mockRemote, mockStore, authedService(), online, testLogger())

	count, err := service.DownloadAndMerge(context.Background(), clientapi.Scope{OwnerID: "user-1"})

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.True(t, entries["rec-1"].Deleted, "tombstone must not be resurrected")
	assert.False(t, entries["rec-1"].Synced)
}

func TestDownloadAndMerge_PendingLocalStateWins(t *testing.T) {
	local := testRecord("rec-1", false, false)
	local.Title = "local edit"
	entries := map[string]*models.StoredRecord{"rec-1": local}
	mockStore := newStoreMock(entries)

	remoteCopy := testRecord("rec-1", false, false).Record
	remoteCopy.Title = "remote copy"
	mockRemote := &clientapi.RemoteMock{
		ListFunc: func(ctx context.Context, scope clientapi.Scope) ([]models.Record, error) {
			return []models.Record{remoteCopy}, nil
		},
	}

	service := NewService(mockRemote, mockStore, authedService(), online, testLogger())

	count, err := service.DownloadAndMerge(context.Background(), clientapi.Scope{OwnerID: "user-1"})

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, "local edit", entries["rec-1"].Title)
	assert.False(t, entries["rec-1"].Synced)
}

func TestDownloadAndMerge_SyncedLocalCopyOverwritten(t *testing.T) {
	local := testRecord("rec-1", true, false)
	local.Title = "stale"
	entries := map[string]*models.StoredRecord{"rec-1": local}
	mockStore := newStoreMock(entries)

	remoteCopy := testRecord("rec-1", false, false).Record
	remoteCopy.Title = "fresh"
	mockRemote := &clientapi.RemoteMock{
		ListFunc: func(ctx context.Context, scope clientapi.Scope) ([]models.Record, error) {
			return []models.Record{remoteCopy}, nil
		},
	}

	service := NewService(mockRemote, mockStore, authedService(), online, testLogger())

	count, err := service.DownloadAndMerge(context.Background(), clientapi.Scope{OwnerID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "fresh", entries["rec-1"].Title)
	assert.True(t, entries["rec-1"].Synced)
}

func TestDownloadAndMerge_RemoteListFailure(t *testing.T) {
	mockStore := newStoreMock(map[string]*models.StoredRecord{})
	mockRemote := &clientapi.RemoteMock{
		ListFunc: func(ctx context.Context, scope clientapi.Scope) ([]models.Record, error) {
			return nil, errors.New("server down")
		},
	}

	service := NewService(mockRemote, mockStore, authedService(), online, testLogger())

	count, err := service.DownloadAndMerge(context.Background(), clientapi.Scope{PublicOnly: true})

	require.Error(t, err)
	assert.Zero(t, count)
	assert.Empty(t, mockStore.UpsertManyCalls())
}

func TestPendingCount(t *testing.T) {
	entries := map[string]*models.StoredRecord{
		"rec-1": testRecord("rec-1", false, false),
		"rec-2": testRecord("rec-2", false, true),
		"rec-3": testRecord("rec-3", true, false),
	}
	mockStore := newStoreMock(entries)

	service := NewService(&clientapi.RemoteMock{}, mockStore, authedService(), online, testLogger())

	count, err := service.PendingCount(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSyncResult_String(t *testing.T) {
	result := &SyncResult{Uploaded: 3, Deleted: 1, Failed: 2}
	assert.Equal(t, "uploaded: 3, deleted: 1, failed: 2", result.String())
}

