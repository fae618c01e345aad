package readstore

import (
	"context"
	"fmt"
	"strings"

	"hotelier/internal/domain/money"
	"hotelier/internal/domain/timespan"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) queries.BookingReadStore {
	return &bookingReadStore{pool: pool}
}

func (s *bookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.room_id, r.name,
		       b.check_in_date, b.check_out_date,
		       b.guest_name, b.guest_email, b.guest_phone,
		       b.number_of_guests, b.special_requests, b.user_id,
		       b.total_price_cents, b.status, b.created_at, b.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.id = $1`

	var (
		bookingID       pgtype.UUID
		roomID          pgtype.UUID
		roomName        string
		checkIn         pgtype.Date
		checkOut        pgtype.Date
		guestName       string
		guestEmail      string
		guestPhone      string
		numberOfGuests  int32
		specialRequests string
		userID          pgtype.UUID
		totalCents      int64
		status          string
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&bookingID, &roomID, &roomName,
		&checkIn, &checkOut,
		&guestName, &guestEmail, &guestPhone,
		&numberOfGuests, &specialRequests, &userID,
		&totalCents, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, queries.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to load booking")
	}

	in := pgconv.DateFromPgtype(checkIn)
	out := pgconv.DateFromPgtype(checkOut)
	return &queries.BookingView{
		ID:              uuid.UUID(bookingID.Bytes),
		RoomID:          uuid.UUID(roomID.Bytes),
		RoomName:        roomName,
		CheckInDate:     timespan.FormatDate(in),
		CheckOutDate:    timespan.FormatDate(out),
		GuestName:       guestName,
		GuestEmail:      guestEmail,
		GuestPhone:      guestPhone,
		NumberOfGuests:  int(numberOfGuests),
		SpecialRequests: specialRequests,
		UserID:          pgconv.UUIDPtrFromPgtype(userID),
		TotalPrice:      money.New(totalCents).String(),
		Status:          status,
		Nights:          int(timespan.Truncate(out).Sub(timespan.Truncate(in)).Hours() / 24),
		CreatedAt:       pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:       pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

// List serves the elevated listing with optional status and date-window
// filters. StartDate keeps bookings checking in on or after it, EndDate
// bookings checking out on or before it.
func (s *bookingReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingListItem, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conds = append(conds, fmt.Sprintf("b.status = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, pgconv.DateToPgtype(*filter.StartDate))
		conds = append(conds, fmt.Sprintf("b.check_in_date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, pgconv.DateToPgtype(*filter.EndDate))
		conds = append(conds, fmt.Sprintf("b.check_out_date <= $%d", len(args)))
	}

	query := `
		SELECT b.id, b.room_id, r.name,
		       b.check_in_date, b.check_out_date,
		       b.guest_name, b.total_price_cents, b.status, b.created_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY b.created_at DESC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	defer rows.Close()
	return scanBookingList(rows)
}

func (s *bookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.room_id, r.name,
		       b.check_in_date, b.check_out_date,
		       b.guest_name, b.total_price_cents, b.status, b.created_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`

	rows, err := s.pool.Query(ctx, query, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user bookings")
	}
	defer rows.Close()
	return scanBookingList(rows)
}

func scanBookingList(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var (
			id         pgtype.UUID
			roomID     pgtype.UUID
			roomName   string
			checkIn    pgtype.Date
			checkOut   pgtype.Date
			guestName  string
			totalCents int64
			status     string
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &roomID, &roomName, &checkIn, &checkOut, &guestName, &totalCents, &status, &createdAt); err != nil {
			return nil, errs.Wrap(err, "failed to scan booking row")
		}
		items = append(items, &queries.BookingListItem{
			ID:           uuid.UUID(id.Bytes),
			RoomID:       uuid.UUID(roomID.Bytes),
			RoomName:     roomName,
			CheckInDate:  timespan.FormatDate(pgconv.DateFromPgtype(checkIn)),
			CheckOutDate: timespan.FormatDate(pgconv.DateFromPgtype(checkOut)),
			GuestName:    guestName,
			TotalPrice:   money.New(totalCents).String(),
			Status:       status,
			CreatedAt:    pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to read booking rows")
	}
	return items, nil
}
