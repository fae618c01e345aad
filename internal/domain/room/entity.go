package room

import (
	"errors"
	"strings"
	"time"

	"hotelier/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName    = errors.New("room name cannot be empty")
	ErrRoomNameTooLong  = errors.New("room name is too long (max 200 characters)")
	ErrInvalidCapacity  = errors.New("room capacity must be at least 1")
	ErrNegativeBaseRate = errors.New("base nightly rate cannot be negative")
)

const MaxRoomNameLength = 200

// Room carries only what the booking core needs: identity, nightly base
// rate, capacity and the active flag. The full admin-facing room record
// (descriptions, amenities, images) lives outside this service.
type Room struct {
	id        uuid.UUID
	name      string
	capacity  int
	baseRate  money.Money
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(id uuid.UUID, name string, capacity int, baseRate money.Money, isActive bool) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return nil, ErrRoomNameTooLong
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if baseRate.IsNegative() {
		return nil, ErrNegativeBaseRate
	}

	return &Room{
		id:       id,
		name:     name,
		capacity: capacity,
		baseRate: baseRate,
		isActive: isActive,
	}, nil
}

func ReconstructRoom(id uuid.UUID, name string, capacity int, baseRate money.Money, isActive bool, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:        id,
		name:      name,
		capacity:  capacity,
		baseRate:  baseRate,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) Name() string          { return r.name }
func (r *Room) Capacity() int         { return r.capacity }
func (r *Room) BaseRate() money.Money { return r.baseRate }
func (r *Room) IsActive() bool        { return r.isActive }
func (r *Room) CreatedAt() time.Time  { return r.createdAt }
func (r *Room) UpdatedAt() time.Time  { return r.updatedAt }

func (r *Room) Accommodates(guests int) bool {
	return guests >= 1 && guests <= r.capacity
}
