package videometa

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/vidvault/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+video_metadata\s*\(video_key,\s*uploader_id,\s*uploader_name\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*$`

	mock.ExpectExec(q).
		WithArgs("videos/1-clip.mp4", "u-1", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	m := &models.VideoMetadata{VideoKey: "videos/1-clip.mp4", UploaderID: "u-1", UploaderName: "alice"}
	if err := repo.Create(context.Background(), m); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*INSERT\s+INTO\s+video_metadata`).
		WithArgs("videos/1-clip.mp4", "u-1", "alice").
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &models.VideoMetadata{
		VideoKey: "videos/1-clip.mp4", UploaderID: "u-1", UploaderName: "alice",
	})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetAll_ReturnsRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"video_key", "uploader_id", "uploader_name"}).
		AddRow("videos/1-a.mp4", "u-1", "alice").
		AddRow("videos/2-b.mov", "u-2", "bob")
	mock.ExpectQuery(`(?s)^SELECT\s+video_key,\s*uploader_id,\s*uploader_name\s+FROM\s+video_metadata$`).
		WillReturnRows(rows)

	got, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(got) != 2 || got[0].UploaderName != "alice" || got[1].VideoKey != "videos/2-b.mov" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestUpdateKey_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+video_metadata\s+SET\s+video_key\s*=\s*\$1\s+WHERE\s+video_key\s*=\s*\$2$`

	mock.ExpectExec(q).
		WithArgs("videos/new.mp4", "videos/old.mp4").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateKey(context.Background(), "videos/old.mp4", "videos/new.mp4"); err != nil {
		t.Fatalf("UpdateKey error: %v", err)
	}
}

func TestUpdateKey_NoRowIsNotAnError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^UPDATE\s+video_metadata`).
		WithArgs("videos/new.mp4", "videos/old.mp4").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateKey(context.Background(), "videos/old.mp4", "videos/new.mp4"); err != nil {
		t.Fatalf("UpdateKey error: %v", err)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+video_metadata\s+WHERE\s+video_key\s*=\s*\$1$`

	mock.ExpectExec(q).
		WithArgs("videos/1-a.mp4").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).
		WithArgs("videos/1-a.mp4").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "videos/1-a.mp4"); err != nil {
		t.Fatalf("first Delete error: %v", err)
	}
	if err := repo.Delete(context.Background(), "videos/1-a.mp4"); err != nil {
		t.Fatalf("second Delete error: %v", err)
	}
}
