package readstore

import (
	"context"

	"hotelier/internal/domain/money"
	"hotelier/internal/domain/room"
	"hotelier/internal/domain/timespan"
	"hotelier/internal/infra/repository"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type availabilityReadStore struct {
	// the write path runs the same counters inside its transaction
	shared.ConflictReads
	pool *pgxpool.Pool
}

func NewAvailabilityReadStore(pool *pgxpool.Pool) queries.AvailabilityReadStore {
	return &availabilityReadStore{
		ConflictReads: repository.NewConflictReads(pool),
		pool:          pool,
	}
}

func (s *availabilityReadStore) RoomByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	const query = `
		SELECT id, name, capacity, base_rate_cents, is_active, created_at, updated_at
		FROM rooms
		WHERE id = $1`

	var (
		roomID        pgtype.UUID
		name          string
		capacity      int32
		baseRateCents int64
		isActive      bool
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).
		Scan(&roomID, &name, &capacity, &baseRateCents, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, queries.ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to load room")
	}

	return room.ReconstructRoom(
		uuid.UUID(roomID.Bytes),
		name,
		int(capacity),
		money.New(baseRateCents),
		isActive,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (s *availabilityReadStore) SeasonalPrices(ctx context.Context, roomID uuid.UUID) ([]*room.SeasonalPrice, error) {
	return repository.NewSeasonalPriceRepository(s.pool).ListByRoom(ctx, roomID)
}

// ListAvailableRooms is the set-based form of the availability oracle: active
// rooms of sufficient capacity with no overlapping non-cancelled booking and
// no overlapping busy period. The two NOT EXISTS clauses use the same
// half-open interval test as the per-room counters.
func (s *availabilityReadStore) ListAvailableRooms(ctx context.Context, stay timespan.DateRange, minCapacity int) ([]*queries.AvailableRoom, error) {
	const query = `
		SELECT r.id, r.name, r.capacity, r.base_rate_cents
		FROM rooms r
		WHERE r.is_active
		  AND r.capacity >= $1
		  AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = r.id
			  AND b.status <> 'CANCELLED'
			  AND b.check_in_date < $3
			  AND b.check_out_date > $2
		  )
		  AND NOT EXISTS (
			SELECT 1 FROM busy_periods p
			WHERE p.room_id = r.id
			  AND p.start_date < $3
			  AND p.end_date > $2
		  )
		ORDER BY r.name`

	rows, err := s.pool.Query(ctx, query,
		int32(minCapacity),
		pgconv.DateToPgtype(stay.Start()),
		pgconv.DateToPgtype(stay.End()),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list available rooms")
	}
	defer rows.Close()

	rooms := make([]*queries.AvailableRoom, 0)
	for rows.Next() {
		var (
			id            pgtype.UUID
			name          string
			capacity      int32
			baseRateCents int64
		)
		if err := rows.Scan(&id, &name, &capacity, &baseRateCents); err != nil {
			return nil, errs.Wrap(err, "failed to scan room row")
		}
		rooms = append(rooms, &queries.AvailableRoom{
			ID:       uuid.UUID(id.Bytes),
			Name:     name,
			Capacity: int(capacity),
			BaseRate: money.New(baseRateCents).String(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to read room rows")
	}
	return rooms, nil
}
