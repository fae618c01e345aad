package repository

import (
	"context"

	"hotelier/internal/domain/money"
	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type seasonalPriceRepository struct {
	db db.DBTX
}

func NewSeasonalPriceRepository(dbtx db.DBTX) shared.SeasonalPriceRepository {
	return &seasonalPriceRepository{db: dbtx}
}

func (r *seasonalPriceRepository) Create(ctx context.Context, s *room.SeasonalPrice) error {
	const query = `
		INSERT INTO seasonal_prices (
			id, room_id, name, start_date, end_date, nightly_rate_cents, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, now())`

	_, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(s.ID()),
		pgconv.UUIDToPgtype(s.RoomID()),
		s.Name(),
		pgconv.DateToPgtype(s.StartDate()),
		pgconv.DateToPgtype(s.EndDate()),
		s.Rate().Cents(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create seasonal price", err)
	}
	return nil
}

func (r *seasonalPriceRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM seasonal_prices WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete seasonal price", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("seasonal price not found", nil, infra.KindNotFound)
	}
	return nil
}

// ListByRoom returns the room's seasons ordered by (start_date, id), the same
// order the rate card resolves overlapping seasons in.
func (r *seasonalPriceRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*room.SeasonalPrice, error) {
	const query = `
		SELECT id, room_id, name, start_date, end_date, nightly_rate_cents, created_at
		FROM seasonal_prices
		WHERE room_id = $1
		ORDER BY start_date, id`

	rows, err := r.db.Query(ctx, query, pgconv.UUIDToPgtype(roomID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seasonal prices", err)
	}
	defer rows.Close()

	var seasons []*room.SeasonalPrice
	for rows.Next() {
		var (
			id        pgtype.UUID
			rID       pgtype.UUID
			name      string
			startDate pgtype.Date
			endDate   pgtype.Date
			rateCents int64
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &rID, &name, &startDate, &endDate, &rateCents, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan seasonal price", err)
		}
		seasons = append(seasons, room.ReconstructSeasonalPrice(
			uuid.UUID(id.Bytes),
			uuid.UUID(rID.Bytes),
			name,
			pgconv.DateFromPgtype(startDate),
			pgconv.DateFromPgtype(endDate),
			money.New(rateCents),
			pgconv.TimeFromPgtype(createdAt),
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read seasonal prices", err)
	}
	return seasons, nil
}
