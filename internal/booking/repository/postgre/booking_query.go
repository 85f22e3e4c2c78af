package postgre

import (
	"time"

	"tastoria/pkg/response"
)

const bookingColumns = `id, user_id, cafe_id, date, time, party_size, name, contact, created_at`

// slotLockQuery serialises bookings of one slot for the rest of the transaction.
const slotLockQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`

// insertIfRoomQuery inserts nothing when the party does not fit.
// Every parameter carries a cast: $6 is used both as an INT column value and
// in a BIGINT sum, and postgres rejects a parameter deduced with two types.
const insertIfRoomQuery = `
	INSERT INTO bookings (id, user_id, cafe_id, date, time, party_size, name, contact, created_at)
	SELECT $1::uuid, $2::uuid, $3::text, $4::date, $5::text, $6::int, $7::text, $8::text, NOW()
	WHERE (
		SELECT COALESCE(SUM(party_size), 0) FROM bookings
		WHERE cafe_id = $3::text AND date = $4::date AND time = $5::text
	) + $6::int <= $9::bigint
	RETURNING ` + bookingColumns

const listByUserQuery = `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY date DESC, created_at DESC`

const bookedSeatsQuery = `
	SELECT time, SUM(party_size) FROM bookings
	WHERE cafe_id = $1 AND date = $2
	GROUP BY time`

func slotKey(cafeID string, date time.Time, slot string) string {
	return cafeID + "|" + formatDate(date) + "|" + slot
}

func formatDate(d time.Time) string {
	return d.Format(response.DateFormat)
}

// localDay moves a DATE column value to local midnight of the same day.
func localDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
