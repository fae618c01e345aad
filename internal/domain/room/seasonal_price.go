package room

import (
	"bytes"
	"errors"
	"strings"
	"time"

	"hotelier/internal/domain/money"
	"hotelier/internal/domain/timespan"

	"github.com/google/uuid"
)

var (
	ErrEmptySeasonName    = errors.New("season name cannot be empty")
	ErrInvalidSeason      = errors.New("season end date must be after start date")
	ErrNegativeSeasonRate = errors.New("seasonal nightly rate cannot be negative")
)

// SeasonalPrice overrides a room's nightly rate for an inclusive date
// interval [startDate, endDate]. Inclusive on both ends, unlike booking
// ranges: a season covering 06-01..06-10 prices the night of 06-10 too.
type SeasonalPrice struct {
	id        uuid.UUID
	roomID    uuid.UUID
	name      string
	startDate time.Time
	endDate   time.Time
	rate      money.Money
	createdAt time.Time
}

func NewSeasonalPrice(id, roomID uuid.UUID, name string, startDate, endDate time.Time, rate money.Money) (*SeasonalPrice, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptySeasonName
	}

	startDate = timespan.Truncate(startDate)
	endDate = timespan.Truncate(endDate)
	if !startDate.Before(endDate) {
		return nil, ErrInvalidSeason
	}
	if rate.IsNegative() {
		return nil, ErrNegativeSeasonRate
	}

	return &SeasonalPrice{
		id:        id,
		roomID:    roomID,
		name:      name,
		startDate: startDate,
		endDate:   endDate,
		rate:      rate,
	}, nil
}

func ReconstructSeasonalPrice(id, roomID uuid.UUID, name string, startDate, endDate time.Time, rate money.Money, createdAt time.Time) *SeasonalPrice {
	return &SeasonalPrice{
		id:        id,
		roomID:    roomID,
		name:      name,
		startDate: timespan.Truncate(startDate),
		endDate:   timespan.Truncate(endDate),
		rate:      rate,
		createdAt: createdAt,
	}
}

func (s *SeasonalPrice) ID() uuid.UUID        { return s.id }
func (s *SeasonalPrice) RoomID() uuid.UUID    { return s.roomID }
func (s *SeasonalPrice) Name() string         { return s.name }
func (s *SeasonalPrice) StartDate() time.Time { return s.startDate }
func (s *SeasonalPrice) EndDate() time.Time   { return s.endDate }
func (s *SeasonalPrice) Rate() money.Money    { return s.rate }
func (s *SeasonalPrice) CreatedAt() time.Time { return s.createdAt }

// Covers reports whether day falls inside the inclusive season interval.
func (s *SeasonalPrice) Covers(day time.Time) bool {
	day = timespan.Truncate(day)
	return !day.Before(s.startDate) && !day.After(s.endDate)
}

// before orders seasons by (startDate, id) so that overlapping seasons
// resolve deterministically: earliest start wins, then smallest id.
func (s *SeasonalPrice) before(other *SeasonalPrice) bool {
	if !s.startDate.Equal(other.startDate) {
		return s.startDate.Before(other.startDate)
	}
	return bytes.Compare(s.id[:], other.id[:]) < 0
}
