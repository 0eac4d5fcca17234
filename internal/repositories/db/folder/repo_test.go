package folderrepo

import (
	"context"
	"database/sql"
	"documint/internal/models"
	"documint/internal/repositories/db/queries"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, *repository) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	repo := NewRepository(sqlxDB)
	return sqlxDB, mock, repo
}

func TestFolders_Success(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	createdAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(queries.SelectAllFolders)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_by", "created_at"}).
			AddRow(int64(2), "Reports", "Evelyn Blue", createdAt).
			AddRow(int64(1), "Documents", "System", createdAt.Add(-time.Hour)))

	folders, err := repo.Folders(context.Background())
	assert.NoError(t, err)
	assert.Len(t, folders, 2)
	assert.Equal(t, int64(2), folders[0].ID)
	assert.Equal(t, "Reports", folders[0].Name)
	assert.Equal(t, "System", folders[1].CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFolders_Empty(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queries.SelectAllFolders)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_by", "created_at"}))

	folders, err := repo.Folders(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, folders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFolders_QueryError(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queries.SelectAllFolders)).
		WillReturnError(errors.New("db failure"))

	folders, err := repo.Folders(context.Background())
	assert.Nil(t, folders)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Folders")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFolderByID_Success(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	createdAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(queries.SelectFolderByID)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_by", "created_at"}).
			AddRow(int64(2), "Reports", "Evelyn Blue", createdAt))

	folder, err := repo.FolderByID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), folder.ID)
	assert.Equal(t, "Reports", folder.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFolderByID_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queries.SelectFolderByID)).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	folder, err := repo.FolderByID(context.Background(), 99)
	assert.Nil(t, folder)
	assert.ErrorIs(t, err, models.ErrFolderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExists_True(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queries.FolderExists)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), 2)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExists_False(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queries.FolderExists)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.Exists(context.Background(), 99)
	assert.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queries.InsertFolder)).
		WithArgs("Reports", "Evelyn Blue").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.Create(context.Background(), "Reports", "Evelyn Blue")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_InsertError(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queries.InsertFolder)).
		WithArgs("Reports", "Evelyn Blue").
		WillReturnError(errors.New("db failure"))

	id, err := repo.Create(context.Background(), "Reports", "Evelyn Blue")
	assert.Zero(t, id)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Create")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_RowRemoved(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(queries.DeleteFolder)).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), 2)
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NoRow(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(queries.DeleteFolder)).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 99)
	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
