package postgre

import (
	"context"
	"database/sql"
	"errors"

	"tastoria/internal/booking"
	repo "tastoria/internal/booking/repository"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(s scanner) (booking.Booking, error) {
	var b booking.Booking
	err := s.Scan(&b.ID, &b.UserID, &b.CafeID, &b.Date, &b.Time, &b.PartySize, &b.Name, &b.Contact, &b.CreatedAt)
	if err != nil {
		return booking.Booking{}, err
	}
	b.Date = localDay(b.Date)
	return b, nil
}

func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (booking.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateBooking"), err)
		return booking.Booking{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, slotLockQuery, slotKey(opt.CafeID, opt.Date, opt.Time)); err != nil {
		r.l.Errorf(ctx, "%s lock: %v", r.dsn("CreateBooking"), err)
		return booking.Booking{}, repo.ErrFailedToInsert
	}

	b, err := scanBooking(tx.QueryRowContext(ctx, insertIfRoomQuery,
		r.newID(), opt.UserID, opt.CafeID, formatDate(opt.Date), opt.Time, opt.PartySize, opt.Name, opt.Contact, opt.Capacity,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return booking.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("CreateBooking"), err)
		return booking.Booking{}, repo.ErrFailedToInsert
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateBooking"), err)
		return booking.Booking{}, repo.ErrFailedToInsert
	}
	return b, nil
}

func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]booking.Booking, error) {
	rows, err := r.db.QueryContext(ctx, listByUserQuery, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := []booking.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListBookings"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

func (r *implRepository) BookedSeats(ctx context.Context, opt repo.BookedSeatsOptions) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, bookedSeatsQuery, opt.CafeID, formatDate(opt.Date))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("BookedSeats"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	seats := map[string]int{}
	for rows.Next() {
		var (
			slot  string
			total int
		)
		if err := rows.Scan(&slot, &total); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("BookedSeats"), err)
			return nil, repo.ErrFailedToList
		}
		seats[slot] = total
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("BookedSeats"), err)
		return nil, repo.ErrFailedToList
	}
	return seats, nil
}
