package postgre

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	repo "tastoria/internal/booking/repository"
	"tastoria/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cols = []string{"id", "user_id", "cafe_id", "date", "time", "party_size", "name", "contact", "created_at"}

func newTestRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	r := New(db, log.NewNop()).(*implRepository)
	r.newID = func() string { return "bk-1" }
	return r, mock
}

func TestCreateBooking(t *testing.T) {
	day := time.Date(2026, 11, 5, 0, 0, 0, 0, time.Local)
	opt := repo.CreateBookingOptions{
		UserID: "u-1", CafeID: "ttmm", Date: day, Time: "10:00 AM",
		PartySize: 4, Name: "Asha", Contact: "9876543210", Capacity: 40,
	}

	t.Run("ok", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("pg_advisory_xact_lock")).
			WithArgs("ttmm|2026-11-05|10:00 AM").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
			WithArgs("bk-1", "u-1", "ttmm", "2026-11-05", "10:00 AM", 4, "Asha", "9876543210", 40).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("bk-1", "u-1", "ttmm", time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC), "10:00 AM", 4, "Asha", "9876543210", time.Now()))
		mock.ExpectCommit()

		b, err := r.CreateBooking(context.Background(), opt)
		require.NoError(t, err)
		assert.Equal(t, "bk-1", b.ID)
		assert.Equal(t, 5, b.Date.Day())
		assert.Equal(t, time.Local, b.Date.Location())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("slot full is zero value", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("pg_advisory_xact_lock").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("INSERT INTO bookings").WillReturnRows(sqlmock.NewRows(cols))
		mock.ExpectRollback()

		b, err := r.CreateBooking(context.Background(), opt)
		require.NoError(t, err)
		assert.Empty(t, b.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("pg_advisory_xact_lock").WillReturnError(errors.New("conn reset"))
		mock.ExpectRollback()

		_, err := r.CreateBooking(context.Background(), opt)
		assert.ErrorIs(t, err, repo.ErrFailedToInsert)
	})
}

func TestInsertIfRoomQueryCastsParams(t *testing.T) {
	params := regexp.MustCompile(`\$\d+(::\w+)?`).FindAllStringSubmatch(insertIfRoomQuery, -1)
	require.NotEmpty(t, params)

	types := map[string]string{}
	for _, m := range params {
		p, cast, _ := strings.Cut(m[0], "::")
		require.NotEmpty(t, cast, "parameter %s has no cast", p)
		if prev, ok := types[p]; ok {
			assert.Equal(t, prev, cast, "parameter %s cast two ways", p)
		}
		types[p] = cast
	}

	assert.Equal(t, map[string]string{
		"$1": "uuid", "$2": "uuid", "$3": "text", "$4": "date", "$5": "text",
		"$6": "int", "$7": "text", "$8": "text", "$9": "bigint",
	}, types)
}

func TestListBookings(t *testing.T) {
	r, mock := newTestRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE user_id = $1")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("bk-2", "u-1", "ttmm", time.Now(), "01:00 PM", 2, "Asha", "a@b.co", time.Now()).
			AddRow("bk-1", "u-1", "ttmm", time.Now(), "10:00 AM", 4, "Asha", "a@b.co", time.Now()))

	out, err := r.ListBookings(context.Background(), repo.ListBookingsOptions{UserID: "u-1"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "bk-2", out[0].ID)
}

func TestBookedSeats(t *testing.T) {
	day := time.Date(2026, 11, 5, 0, 0, 0, 0, time.Local)

	t.Run("ok", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("GROUP BY time")).
			WithArgs("ttmm", "2026-11-05").
			WillReturnRows(sqlmock.NewRows([]string{"time", "sum"}).
				AddRow("09:00 AM", 40).
				AddRow("10:00 AM", 12))

		seats, err := r.BookedSeats(context.Background(), repo.BookedSeatsOptions{CafeID: "ttmm", Date: day})
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"09:00 AM": 40, "10:00 AM": 12}, seats)
	})

	t.Run("driver error", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery("GROUP BY time").WillReturnError(errors.New("timeout"))

		_, err := r.BookedSeats(context.Background(), repo.BookedSeatsOptions{CafeID: "ttmm", Date: day})
		assert.ErrorIs(t, err, repo.ErrFailedToList)
	})
}
