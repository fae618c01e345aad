package repository

import (
	"context"

	"hotelier/internal/domain/calendar"
	"hotelier/internal/domain/timespan"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type busyPeriodRepository struct {
	db db.DBTX
}

func NewBusyPeriodRepository(dbtx db.DBTX) shared.BusyPeriodRepository {
	return &busyPeriodRepository{db: dbtx}
}

func (r *busyPeriodRepository) Create(ctx context.Context, p *calendar.BusyPeriod) error {
	const query = `
		INSERT INTO busy_periods (
			id, room_id, start_date, end_date, kind,
			booking_id, notes, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`

	_, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(p.ID()),
		pgconv.UUIDToPgtype(p.RoomID()),
		pgconv.DateToPgtype(p.Period().Start()),
		pgconv.DateToPgtype(p.Period().End()),
		string(p.Kind()),
		pgconv.UUIDPtrToPgtype(p.BookingID()),
		p.Notes(),
		pgconv.UUIDPtrToPgtype(p.CreatedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create busy period", err)
	}
	return nil
}

func (r *busyPeriodRepository) FindByID(ctx context.Context, id uuid.UUID) (*calendar.BusyPeriod, error) {
	const query = `
		SELECT id, room_id, start_date, end_date, kind,
		       booking_id, notes, created_by, created_at, updated_at
		FROM busy_periods
		WHERE id = $1`

	var (
		periodID  pgtype.UUID
		roomID    pgtype.UUID
		startDate pgtype.Date
		endDate   pgtype.Date
		kind      string
		bookingID pgtype.UUID
		notes     string
		createdBy pgtype.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&periodID, &roomID, &startDate, &endDate, &kind,
		&bookingID, &notes, &createdBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("busy period not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find busy period", err)
	}

	period, err := timespan.NewDateRange(pgconv.DateFromPgtype(startDate), pgconv.DateFromPgtype(endDate))
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt busy period range", err)
	}

	return calendar.ReconstructBusyPeriod(
		uuid.UUID(periodID.Bytes),
		uuid.UUID(roomID.Bytes),
		period,
		calendar.Kind(kind),
		pgconv.UUIDPtrFromPgtype(bookingID),
		notes,
		pgconv.UUIDPtrFromPgtype(createdBy),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *busyPeriodRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM busy_periods WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete busy period", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("busy period not found", nil, infra.KindNotFound)
	}
	return nil
}

// DeleteByBookingID removes every hold linked to the booking and reports how
// many were removed. Zero is not an error: a cancelled booking may already
// have no hold.
func (r *busyPeriodRepository) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM busy_periods WHERE booking_id = $1`,
		pgconv.UUIDToPgtype(bookingID),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete booking holds", err)
	}
	return tag.RowsAffected(), nil
}

func (r *busyPeriodRepository) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM busy_periods WHERE booking_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(bookingID)).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check booking hold", err)
	}
	return exists, nil
}
