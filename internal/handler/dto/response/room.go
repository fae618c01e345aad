package response

import (
	"time"

	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

// AvailabilityResponse mirrors the oracle's answer: the price is only quoted
// when the room is available, otherwise total_price is null.
type AvailabilityResponse struct {
	Available  bool    `json:"available"`
	TotalPrice *string `json:"total_price"`
}

type AvailableRoomResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	BaseRate string    `json:"base_rate"`
}

type SeasonalPriceResponse struct {
	ID          uuid.UUID `json:"id"`
	RoomID      uuid.UUID `json:"room_id"`
	Name        string    `json:"name"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	NightlyRate string    `json:"nightly_rate"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:  v.Available,
		TotalPrice: v.TotalPrice,
	}
}

func FromAvailableRoom(v *queries.AvailableRoom) *AvailableRoomResponse {
	return &AvailableRoomResponse{
		ID:       v.ID,
		Name:     v.Name,
		Capacity: v.Capacity,
		BaseRate: v.BaseRate,
	}
}

func FromSeasonalPriceView(v *queries.SeasonalPriceView) *SeasonalPriceResponse {
	return &SeasonalPriceResponse{
		ID:          v.ID,
		RoomID:      v.RoomID,
		Name:        v.Name,
		StartDate:   v.StartDate,
		EndDate:     v.EndDate,
		NightlyRate: v.NightlyRate,
		CreatedAt:   v.CreatedAt,
	}
}
