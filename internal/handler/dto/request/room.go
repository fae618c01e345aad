package request

import (
	"time"

	"hotelier/internal/domain/timespan"
)

type CreateSeasonalPriceRequest struct {
	Name        string `json:"name" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	NightlyRate string `json:"nightly_rate" binding:"required"`
}

func (r CreateSeasonalPriceRequest) ParseDates() (start, end time.Time, err error) {
	start, err = timespan.ParseDate(r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = timespan.ParseDate(r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
