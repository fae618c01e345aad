package request

import (
	"time"

	"hotelier/internal/domain/timespan"
)

type CreateBlockRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Kind      string `json:"kind" binding:"required"`
	Notes     string `json:"notes"`
}

func (r CreateBlockRequest) ParseDates() (start, end time.Time, err error) {
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
