package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/vidvault/internal/dbx"
	"github.com/dmitrijs2005/vidvault/internal/logging"
	sc "github.com/dmitrijs2005/vidvault/internal/server/config"
	"github.com/dmitrijs2005/vidvault/internal/server/models"
	"github.com/dmitrijs2005/vidvault/internal/server/objectstore"
	"github.com/dmitrijs2005/vidvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/vidvault/internal/server/repositories/uploadhistory"
	"github.com/dmitrijs2005/vidvault/internal/server/repositories/users"
	"github.com/dmitrijs2005/vidvault/internal/server/repositories/videometa"
)

// -------- test fakes --------

type fakeGateway struct {
	calls []string

	putKey         string
	putSize        int64
	putContentType string
	putErr         error

	listObjs []objectstore.ObjectInfo
	listErr  error

	copySrc string
	copyDst string
	copyErr error

	deleted   []string
	deleteErr error
}

func (f *fakeGateway) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	f.calls = append(f.calls, "put")
	if f.putErr != nil {
		return f.putErr
	}
	f.putKey, f.putSize, f.putContentType = key, size, contentType
	return nil
}

func (f *fakeGateway) List(ctx context.Context) ([]objectstore.ObjectInfo, error) {
	f.calls = append(f.calls, "list")
	return f.listObjs, f.listErr
}

func (f *fakeGateway) Copy(ctx context.Context, srcKey, dstKey string) error {
	f.calls = append(f.calls, "copy")
	if f.copyErr != nil {
		return f.copyErr
	}
	f.copySrc, f.copyDst = srcKey, dstKey
	return nil
}

func (f *fakeGateway) Delete(ctx context.Context, key string) error {
	f.calls = append(f.calls, "delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}

type fakeUsersRepo struct {
	users.Repository
	created   []*models.User
	createErr error
	all       []*models.User
	allErr    error
	deleted   []string
	deleteErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.CreatedAt = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsersRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	return f.all, f.allErr
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeMetaRepo struct {
	videometa.Repository
	created   []*models.VideoMetadata
	createErr error

	all    []*models.VideoMetadata
	allErr error

	updatedOld string
	updatedNew string
	updateErr  error

	deleted   []string
	deleteErr error
}

func (f *fakeMetaRepo) Create(ctx context.Context, m *models.VideoMetadata) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, m)
	return nil
}

func (f *fakeMetaRepo) GetAll(ctx context.Context) ([]*models.VideoMetadata, error) {
	return f.all, f.allErr
}

func (f *fakeMetaRepo) UpdateKey(ctx context.Context, oldKey, newKey string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedOld, f.updatedNew = oldKey, newKey
	return nil
}

func (f *fakeMetaRepo) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}

type fakeHistoryRepo struct {
	uploadhistory.Repository
	appended  []int64
	appendErr error

	sum    int64
	sumErr error

	totals    []*models.MonthUsage
	totalsErr error
}

func (f *fakeHistoryRepo) Append(ctx context.Context, e *models.UploadHistoryEntry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, e.Size)
	return nil
}

func (f *fakeHistoryRepo) SumBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return f.sum, f.sumErr
}

func (f *fakeHistoryRepo) MonthlyTotals(ctx context.Context, months int) ([]*models.MonthUsage, error) {
	return f.totals, f.totalsErr
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	u *fakeUsersRepo
	m *fakeMetaRepo
	h *fakeHistoryRepo
}

func (f *fakeRepoManager) Users(db dbx.DBTX) users.Repository                 { return f.u }
func (f *fakeRepoManager) VideoMetadata(db dbx.DBTX) videometa.Repository     { return f.m }
func (f *fakeRepoManager) UploadHistory(db dbx.DBTX) uploadhistory.Repository { return f.h }

// -------- helpers --------

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testConfig() *sc.Config {
	cfg := &sc.Config{}
	cfg.LoadDefaults()
	return cfg
}

func setNow(t *testing.T, at time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = orig })
}
