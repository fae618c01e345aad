package queries

import (
	"context"

	"hotelier/internal/domain/user"
	"hotelier/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) ([]*BookingListItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	// List is role-scoped: elevated actors see everything and may filter,
	// regular actors see only bookings linked to their own account.
	List(ctx context.Context, actor user.Actor, filter BookingFilter) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsElevated() {
		// Hide other users' bookings as not-found rather than forbidden.
		if view.UserID == nil || *view.UserID != actor.ID {
			return nil, ErrBookingNotFound
		}
	}

	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, actor user.Actor, filter BookingFilter) ([]*BookingListItem, error) {
	if actor.IsElevated() {
		return q.store.List(ctx, filter)
	}
	return q.store.ListByUser(ctx, actor.ID)
}
