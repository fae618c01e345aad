package repository

import (
	"context"

	"hotelier/internal/domain/timespan"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

type conflictReads struct {
	db db.DBTX
}

// NewConflictReads builds the overlap counters behind the availability
// oracle. Both WHERE clauses encode the same half-open interval test
// (existing.start < wanted.end AND wanted.start < existing.end), so a stay
// beginning on another stay's checkout day never conflicts.
func NewConflictReads(dbtx db.DBTX) shared.ConflictReads {
	return &conflictReads{db: dbtx}
}

func (r *conflictReads) CountOverlappingBookings(ctx context.Context, roomID uuid.UUID, stay timespan.DateRange) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1
		  AND status <> 'CANCELLED'
		  AND check_in_date < $3
		  AND check_out_date > $2`

	var count int64
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(roomID),
		pgconv.DateToPgtype(stay.Start()),
		pgconv.DateToPgtype(stay.End()),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return count, nil
}

func (r *conflictReads) CountOverlappingBusyPeriods(ctx context.Context, roomID uuid.UUID, stay timespan.DateRange) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM busy_periods
		WHERE room_id = $1
		  AND start_date < $3
		  AND end_date > $2`

	var count int64
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(roomID),
		pgconv.DateToPgtype(stay.Start()),
		pgconv.DateToPgtype(stay.End()),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping busy periods", err)
	}
	return count, nil
}
