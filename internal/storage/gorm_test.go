package storage

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestGorm_PutWriteFailure(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	store := &Gorm{db: gormDB}
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "kv_records"`)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := store.Put(ctx, "devconnect_posts", []byte("[]"))
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGorm_GetQueryFailure(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	store := &Gorm{db: gormDB}
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "kv_records"`)).
		WillReturnError(assert.AnError)

	_, err := store.Get(ctx, "devconnect_posts")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
