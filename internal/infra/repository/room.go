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

type roomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) shared.RoomRepository {
	return &roomRepository{db: dbtx}
}

// FindForUpdate locks the room row for the rest of the transaction. This is
// the serialization point for all booking and ledger writes on one room.
func (r *roomRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	const query = `
		SELECT id, name, capacity, base_rate_cents, is_active, created_at, updated_at
		FROM rooms
		WHERE id = $1
		FOR UPDATE`

	var (
		roomID        pgtype.UUID
		name          string
		capacity      int32
		baseRateCents int64
		isActive      bool
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).
		Scan(&roomID, &name, &capacity, &baseRateCents, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
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
