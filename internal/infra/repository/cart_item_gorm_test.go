package repository_test

import (
	"context"
	"testing"

	infrarepo "app/internal/infra/repository"
	repo "app/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlmockを裏側に持つgorm.DBを作る
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	return db, mock
}

// 既存行がある場合はFOR UPDATEで読んでから数量加算
func TestCartItemGormRepository_Upsert_IncrementsExistingRow(t *testing.T) {
	db, mock := newMockDB(t)
	r := infrarepo.NewCartItemGormRepository(db)

	cartID := "11111111-1111-1111-1111-111111111111"

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "cart_items" WHERE cart_id = .* AND book_id = .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "book_id", "quantity"}).
			AddRow(int64(3), cartID, int64(10), int64(2)))
	mock.ExpectExec(`UPDATE "cart_items" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	item, err := r.UpsertByCartAndBook(context.Background(), cartID, 10, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), item.ID)
	assert.Equal(t, int64(5), item.Quantity)
}

// 行が無い場合は新規INSERT
func TestCartItemGormRepository_Upsert_CreatesNewRow(t *testing.T) {
	db, mock := newMockDB(t)
	r := infrarepo.NewCartItemGormRepository(db)

	cartID := "22222222-2222-2222-2222-222222222222"

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "cart_items" WHERE cart_id = .* AND book_id = .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "book_id", "quantity"}))
	mock.ExpectQuery(`INSERT INTO "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	item, err := r.UpsertByCartAndBook(context.Background(), cartID, 10, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), item.ID)
	assert.Equal(t, int64(2), item.Quantity)
}

func TestCartItemGormRepository_Upsert_RejectsNonPositiveQuantity(t *testing.T) {
	db, _ := newMockDB(t)
	r := infrarepo.NewCartItemGormRepository(db)

	_, err := r.UpsertByCartAndBook(context.Background(), "x", 10, 0)
	assert.Error(t, err)
}

// 対象行が無い更新はErrNotFound
func TestCartItemGormRepository_UpdateQuantity_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := infrarepo.NewCartItemGormRepository(db)

	mock.ExpectExec(`UPDATE "cart_items" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.UpdateQuantity(context.Background(), 99, 5)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCartItemGormRepository_DeleteByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := infrarepo.NewCartItemGormRepository(db)

	mock.ExpectExec(`DELETE FROM "cart_items"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.DeleteByID(context.Background(), 99)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCartItemGormRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := infrarepo.NewCartItemGormRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := r.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
