//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotelier/internal/domain/user"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingStore struct {
	views      map[uuid.UUID]*queries.BookingView
	listCalled *queries.BookingFilter
	byUser     *uuid.UUID
}

func (f *fakeBookingStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v, ok := f.views[id]
	if !ok {
		return nil, queries.ErrBookingNotFound
	}
	return v, nil
}

func (f *fakeBookingStore) List(_ context.Context, filter queries.BookingFilter) ([]*queries.BookingListItem, error) {
	f.listCalled = &filter
	return []*queries.BookingListItem{}, nil
}

func (f *fakeBookingStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	f.byUser = &userID
	return []*queries.BookingListItem{}, nil
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	bookingID := uuid.New()
	anonymousID := uuid.New()

	store := &fakeBookingStore{views: map[uuid.UUID]*queries.BookingView{
		bookingID:   {ID: bookingID, UserID: &ownerID},
		anonymousID: {ID: anonymousID},
	}}
	q := queries.NewBookingQueries(store)

	t.Run("owner sees their booking", func(t *testing.T) {
		view, err := q.GetByID(ctx, user.Actor{ID: ownerID, Role: user.RoleGuest}, bookingID)
		require.NoError(t, err)
		assert.Equal(t, bookingID, view.ID)
	})

	t.Run("other users get not-found, not forbidden", func(t *testing.T) {
		_, err := q.GetByID(ctx, user.Actor{ID: uuid.New(), Role: user.RoleGuest}, bookingID)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("anonymous bookings are hidden from regular users", func(t *testing.T) {
		_, err := q.GetByID(ctx, user.Actor{ID: uuid.New(), Role: user.RoleGuest}, anonymousID)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("staff see any booking", func(t *testing.T) {
		view, err := q.GetByID(ctx, user.Actor{ID: uuid.New(), Role: user.RoleStaff}, bookingID)
		require.NoError(t, err)
		assert.Equal(t, bookingID, view.ID)

		_, err = q.GetByID(ctx, user.Actor{ID: uuid.New(), Role: user.RoleAdmin}, anonymousID)
		assert.NoError(t, err)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := q.GetByID(ctx, user.Actor{ID: uuid.New(), Role: user.RoleAdmin}, uuid.New())
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("elevated actors hit the filtered listing", func(t *testing.T) {
		store := &fakeBookingStore{}
		q := queries.NewBookingQueries(store)

		_, err := q.List(ctx, user.Actor{ID: uuid.New(), Role: user.RoleStaff}, queries.BookingFilter{})
		require.NoError(t, err)
		assert.NotNil(t, store.listCalled)
		assert.Nil(t, store.byUser)
	})

	t.Run("regular actors only see their own bookings", func(t *testing.T) {
		store := &fakeBookingStore{}
		q := queries.NewBookingQueries(store)
		actorID := uuid.New()

		_, err := q.List(ctx, user.Actor{ID: actorID, Role: user.RoleGuest}, queries.BookingFilter{})
		require.NoError(t, err)
		require.NotNil(t, store.byUser)
		assert.Equal(t, actorID, *store.byUser)
		assert.Nil(t, store.listCalled)
	})
}
