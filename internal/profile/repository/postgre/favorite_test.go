package postgre

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	repo "tastoria/internal/profile/repository"
	"tastoria/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(db, log.NewNop()).(*implRepository), mock
}

func TestAddFavorite(t *testing.T) {
	opt := repo.FavoriteOptions{UserID: "u-1", MenuItemID: "item-1"}

	t.Run("ok", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id, menu_item_id) DO NOTHING")).
			WithArgs("u-1", "item-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, r.AddFavorite(context.Background(), opt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already saved", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectExec("INSERT INTO favorites").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, r.AddFavorite(context.Background(), opt))
	})

	t.Run("driver error", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectExec("INSERT INTO favorites").WillReturnError(errors.New("fk violation"))

		assert.ErrorIs(t, r.AddFavorite(context.Background(), opt), repo.ErrFailedToInsert)
	})
}

func TestRemoveFavorite(t *testing.T) {
	r, mock := newTestRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM favorites WHERE user_id = $1 AND menu_item_id = $2")).
		WithArgs("u-1", "item-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.RemoveFavorite(context.Background(), repo.FavoriteOptions{UserID: "u-1", MenuItemID: "item-1"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFavorites(t *testing.T) {
	now := time.Now()
	cols := []string{"id", "cafe_id", "name", "description", "price", "category", "image", "weight",
		"is_available", "created_at", "updated_at", "saved_at"}

	t.Run("ok", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM favorites f")).
			WithArgs("u-1").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("item-2", "ttmm", "Filter Coffee", "", 40.0, "beverages", "", "", true, now, now, now).
				AddRow("item-1", "ttmm", "Masala Dosa", "crispy", 120.5, "breakfast", "", "250g", true, now, now, now.Add(-time.Hour)))

		favs, err := r.ListFavorites(context.Background(), "u-1")
		require.NoError(t, err)
		require.Len(t, favs, 2)
		assert.Equal(t, "Filter Coffee", favs[0].Item.Name)
		assert.Equal(t, 120.5, favs[1].Item.Price)
	})

	t.Run("empty is not nil", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery("FROM favorites f").WillReturnRows(sqlmock.NewRows(cols))

		favs, err := r.ListFavorites(context.Background(), "u-1")
		require.NoError(t, err)
		assert.NotNil(t, favs)
		assert.Empty(t, favs)
	})

	t.Run("driver error", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery("FROM favorites f").WillReturnError(errors.New("timeout"))

		_, err := r.ListFavorites(context.Background(), "u-1")
		assert.ErrorIs(t, err, repo.ErrFailedToList)
	})
}
