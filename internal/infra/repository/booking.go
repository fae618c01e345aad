package repository

import (
	"context"

	"hotelier/internal/domain/booking"
	"hotelier/internal/domain/money"
	"hotelier/internal/domain/timespan"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type bookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) shared.BookingRepository {
	return &bookingRepository{db: dbtx}
}

func (r *bookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, room_id, check_in_date, check_out_date,
			guest_name, guest_email, guest_phone,
			number_of_guests, special_requests, user_id,
			total_price_cents, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.RoomID()),
		pgconv.DateToPgtype(b.Stay().Start()),
		pgconv.DateToPgtype(b.Stay().End()),
		b.Guest().Name(),
		b.Guest().Email(),
		b.Guest().Phone(),
		int32(b.NumberOfGuests()),
		b.SpecialRequests(),
		pgconv.UUIDPtrToPgtype(b.UserID()),
		b.TotalPrice().Cents(),
		string(b.Status()),
		pgconv.TimeToPgtype(b.CreatedAt()),
		pgconv.TimeToPgtype(b.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, room_id, check_in_date, check_out_date,
		       guest_name, guest_email, guest_phone,
		       number_of_guests, special_requests, user_id,
		       total_price_cents, status, created_at, updated_at
		FROM bookings
		WHERE id = $1`

	row := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id))
	b, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	const query = `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, pgconv.UUIDToPgtype(id), string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id              pgtype.UUID
		roomID          pgtype.UUID
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
	if err := row.Scan(
		&id, &roomID, &checkIn, &checkOut,
		&guestName, &guestEmail, &guestPhone,
		&numberOfGuests, &specialRequests, &userID,
		&totalCents, &status, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	stay, err := timespan.NewDateRange(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
	if err != nil {
		return nil, err
	}
	guest, err := booking.NewGuestDetails(guestName, guestEmail, guestPhone)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		uuid.UUID(id.Bytes),
		uuid.UUID(roomID.Bytes),
		stay,
		guest,
		int(numberOfGuests),
		specialRequests,
		pgconv.UUIDPtrFromPgtype(userID),
		money.New(totalCents),
		booking.Status(status),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
