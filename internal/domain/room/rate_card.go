package room

import (
	"sort"
	"time"

	"hotelier/internal/domain/money"
	"hotelier/internal/domain/timespan"
)

// RateCard prices a stay for one room: nightly base rate composed with
// seasonal overrides. Pure; building the card sorts the seasons once so
// repeated quotes over the same data are identical.
type RateCard struct {
	baseRate money.Money
	seasons  []*SeasonalPrice
}

func NewRateCard(r *Room, seasons []*SeasonalPrice) RateCard {
	sorted := make([]*SeasonalPrice, len(seasons))
	copy(sorted, seasons)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].before(sorted[j])
	})
	return RateCard{baseRate: r.BaseRate(), seasons: sorted}
}

// NightlyRate returns the rate for one night. When several seasons cover the
// same day the one with the earliest start date wins, ties broken by
// smallest id.
func (rc RateCard) NightlyRate(day time.Time) money.Money {
	for _, s := range rc.seasons {
		if s.Covers(day) {
			return s.Rate()
		}
	}
	return rc.baseRate
}

// PriceStay sums the nightly rate over every day of the half-open stay
// range; the checkout day is not billed.
func (rc RateCard) PriceStay(stay timespan.DateRange) money.Money {
	total := money.New(0)
	stay.Days(func(day time.Time) bool {
		total = total.Add(rc.NightlyRate(day))
		return true
	})
	return total
}
