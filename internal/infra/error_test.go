//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErrClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind infra.RepositoryErrorKind
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, infra.KindDuplicateKey},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, infra.KindForeignKeyViolated},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, infra.KindConflict},
		{"deadlock detected", &pgconn.PgError{Code: "40P01"}, infra.KindConflict},
		{"other pg error", &pgconn.PgError{Code: "22P02"}, infra.KindDBFailure},
		{"non-pg error", errors.New("connection reset"), infra.KindDBFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("query failed", tt.err)
			assert.True(t, infra.IsKind(err, tt.kind))
		})
	}

	t.Run("explicit kind overrides classification", func(t *testing.T) {
		err := infra.WrapRepoErr("row not found", &pgconn.PgError{Code: "40001"}, infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.False(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("kind survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(infra.WrapRepoErr("hold insert failed", &pgconn.PgError{Code: "23505"}), "creating booking")
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("nil underlying error keeps the given kind", func(t *testing.T) {
		err := infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestIsRetryable(t *testing.T) {
	t.Run("serialization failure and deadlock are retryable", func(t *testing.T) {
		assert.True(t, infra.IsRetryable(&pgconn.PgError{Code: "40001"}))
		assert.True(t, infra.IsRetryable(&pgconn.PgError{Code: "40P01"}))
	})

	t.Run("retryability is visible through the repository wrapper", func(t *testing.T) {
		err := infra.WrapRepoErr("lock wait failed", &pgconn.PgError{Code: "40001"})
		assert.True(t, infra.IsRetryable(err))
	})

	t.Run("everything else is not retryable", func(t *testing.T) {
		assert.False(t, infra.IsRetryable(&pgconn.PgError{Code: "23505"}))
		assert.False(t, infra.IsRetryable(errors.New("connection reset")))
		assert.False(t, infra.IsRetryable(nil))
	})
}
