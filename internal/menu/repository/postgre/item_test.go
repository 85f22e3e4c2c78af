package postgre

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"tastoria/internal/menu"
	repo "tastoria/internal/menu/repository"
	"tastoria/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cols = []string{"id", "cafe_id", "name", "description", "price", "category", "image", "weight", "is_available", "created_at", "updated_at"}

func newTestRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	r := New(db, log.NewNop()).(*implRepository)
	r.newID = func() string { return "item-1" }
	return r, mock
}

func sampleRow(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(cols).AddRow("item-1", "ttmm", "Masala Dosa", "crispy", 120.5, "breakfast", "", "250g", true, now, now)
}

func TestCreateItem(t *testing.T) {
	now := time.Now()

	t.Run("ok", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO menu_items")).
			WithArgs("item-1", "ttmm", "Masala Dosa", "crispy", 120.5, "breakfast", "", "250g", true).
			WillReturnRows(sampleRow(now))

		item, err := r.CreateItem(context.Background(), repo.CreateItemOptions{
			CafeID: "ttmm", Name: "Masala Dosa", Description: "crispy", Price: 120.5,
			Category: "breakfast", Weight: "250g", IsAvailable: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "item-1", item.ID)
		assert.Equal(t, 120.5, item.Price)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO menu_items")).WillReturnError(errors.New("conn reset"))

		_, err := r.CreateItem(context.Background(), repo.CreateItemOptions{CafeID: "ttmm"})
		assert.ErrorIs(t, err, repo.ErrFailedToInsert)
	})
}

func TestGetOneItem(t *testing.T) {
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM menu_items WHERE id = $1 AND cafe_id = $2 LIMIT 1")).
			WithArgs("item-1", "ttmm").
			WillReturnRows(sampleRow(now))

		item, err := r.GetOneItem(context.Background(), repo.GetOneItemOptions{ID: "item-1", CafeID: "ttmm"})
		require.NoError(t, err)
		assert.Equal(t, "Masala Dosa", item.Name)
	})

	t.Run("not found is zero value", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM menu_items WHERE id = $1")).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		item, err := r.GetOneItem(context.Background(), repo.GetOneItemOptions{ID: "missing"})
		require.NoError(t, err)
		assert.Equal(t, menu.Item{}, item)
	})

	t.Run("driver error", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

		_, err := r.GetOneItem(context.Background(), repo.GetOneItemOptions{ID: "x"})
		assert.ErrorIs(t, err, repo.ErrFailedToGet)
	})
}

func TestListItems(t *testing.T) {
	now := time.Now()

	t.Run("filters and pages", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM menu_items WHERE cafe_id = $1 AND category = $2 AND (name ILIKE $3 OR description ILIKE $3)")).
			WithArgs("ttmm", "breakfast", `%50\% off%`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY cafe_id, category, name LIMIT $4 OFFSET $5")).
			WithArgs("ttmm", "breakfast", `%50\% off%`, 2, 1).
			WillReturnRows(sampleRow(now))

		items, total, err := r.ListItems(context.Background(), repo.ListItemsOptions{
			CafeID: "ttmm", Category: "breakfast", Query: "50% off", Limit: 2, Offset: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, items, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no filters", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM menu_items WHERE 1=1")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(regexp.QuoteMeta("FROM menu_items WHERE 1=1 ORDER BY")).
			WillReturnRows(sqlmock.NewRows(cols))

		items, total, err := r.ListItems(context.Background(), repo.ListItemsOptions{})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("count fails", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("boom"))

		_, _, err := r.ListItems(context.Background(), repo.ListItemsOptions{})
		assert.ErrorIs(t, err, repo.ErrFailedToList)
	})
}

func TestUpdateItem(t *testing.T) {
	now := time.Now()

	t.Run("ok", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE menu_items")).
			WithArgs("ttmm", "Masala Dosa", "crispy", 120.5, "breakfast", "", "250g", true, "item-1").
			WillReturnRows(sampleRow(now))

		item, err := r.UpdateItem(context.Background(), repo.UpdateItemOptions{
			ID: "item-1", CafeID: "ttmm", Name: "Masala Dosa", Description: "crispy", Price: 120.5,
			Category: "breakfast", Weight: "250g", IsAvailable: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "item-1", item.ID)
	})

	t.Run("missing row", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE menu_items")).WillReturnError(sql.ErrNoRows)

		item, err := r.UpdateItem(context.Background(), repo.UpdateItemOptions{ID: "gone"})
		require.NoError(t, err)
		assert.Empty(t, item.ID)
	})
}

func TestDeleteItem(t *testing.T) {
	r, mock := newTestRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM menu_items WHERE id = $1")).
		WithArgs("item-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, r.DeleteItem(context.Background(), "item-1"))

	mock.ExpectExec("DELETE").WillReturnError(errors.New("boom"))
	assert.ErrorIs(t, r.DeleteItem(context.Background(), "item-1"), repo.ErrFailedToDelete)
}
