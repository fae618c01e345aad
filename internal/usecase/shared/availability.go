package shared

import (
	"context"

	"hotelier/internal/domain/timespan"

	"github.com/google/uuid"
)

// IsRoomAvailable is the availability oracle: a room is bookable for a stay
// iff no non-cancelled booking and no busy-period ledger entry overlaps it
// under the half-open [checkIn, checkOut) predicate. Returns a bare boolean;
// callers needing the conflicting entity query separately.
func IsRoomAvailable(ctx context.Context, reads ConflictReads, roomID uuid.UUID, stay timespan.DateRange) (bool, error) {
	bookings, err := reads.CountOverlappingBookings(ctx, roomID, stay)
	if err != nil {
		return false, err
	}
	if bookings > 0 {
		return false, nil
	}

	blocks, err := reads.CountOverlappingBusyPeriods(ctx, roomID, stay)
	if err != nil {
		return false, err
	}
	return blocks == 0, nil
}
