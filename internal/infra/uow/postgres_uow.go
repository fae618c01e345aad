package uow

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"hotelier/internal/infra"
	"hotelier/internal/infra/repository"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxAttempts    = 4
	baseBackoff    = 20 * time.Millisecond
	maxJitterMilli = 25
)

// PostgresUnitOfWork runs each Within callback in one transaction. Conflicting
// transactions (serialization failures, deadlocks) are retried with
// exponential backoff; when attempts are exhausted the error carries the
// CONFLICT repository kind so command code can translate it.
type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
}

func NewPostgresUnitOfWork(pool *pgxpool.Pool) *PostgresUnitOfWork {
	return &PostgresUnitOfWork{pool: pool}
}

func (u *PostgresUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			if err := sleepBackoff(ctx, attempt); err != nil {
				return err
			}
		}

		err := u.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !infra.IsRetryable(err) {
			return err
		}
		lastErr = err
	}

	return infra.WrapRepoErr("transaction retries exhausted", lastErr, infra.KindConflict)
}

func (u *PostgresUnitOfWork) runOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		_ = pgxTx.Rollback(ctx)
	}()

	if err := fn(ctx, newTx(pgxTx)); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		if infra.IsRetryable(err) {
			return err
		}
		return infra.WrapRepoErr("failed to commit transaction", err)
	}
	return nil
}

func sleepBackoff(ctx context.Context, attempt int) error {
	delay := baseBackoff << (attempt - 1)
	if n, err := rand.Int(rand.Reader, big.NewInt(maxJitterMilli)); err == nil {
		delay += time.Duration(n.Int64()) * time.Millisecond
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "aborted while backing off")
	case <-timer.C:
		return nil
	}
}

type pgTx struct {
	rooms          shared.RoomRepository
	bookings       shared.BookingRepository
	busyPeriods    shared.BusyPeriodRepository
	seasonalPrices shared.SeasonalPriceRepository
	conflicts      shared.ConflictReads
}

func newTx(tx pgx.Tx) shared.Tx {
	return &pgTx{
		rooms:          repository.NewRoomRepository(tx),
		bookings:       repository.NewBookingRepository(tx),
		busyPeriods:    repository.NewBusyPeriodRepository(tx),
		seasonalPrices: repository.NewSeasonalPriceRepository(tx),
		conflicts:      repository.NewConflictReads(tx),
	}
}

func (t *pgTx) Rooms() shared.RoomRepository                   { return t.rooms }
func (t *pgTx) Bookings() shared.BookingRepository             { return t.bookings }
func (t *pgTx) BusyPeriods() shared.BusyPeriodRepository       { return t.busyPeriods }
func (t *pgTx) SeasonalPrices() shared.SeasonalPriceRepository { return t.seasonalPrices }
func (t *pgTx) Conflicts() shared.ConflictReads                { return t.conflicts }
