package response

import (
	"time"

	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type BusyPeriodResponse struct {
	ID        uuid.UUID  `json:"id"`
	RoomID    uuid.UUID  `json:"room_id"`
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
	Kind      string     `json:"kind"`
	BookingID *uuid.UUID `json:"booking_id,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromBusyPeriodView(v *queries.BusyPeriodView) *BusyPeriodResponse {
	return &BusyPeriodResponse{
		ID:        v.ID,
		RoomID:    v.RoomID,
		StartDate: v.StartDate,
		EndDate:   v.EndDate,
		Kind:      v.Kind,
		BookingID: v.BookingID,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
	}
}
