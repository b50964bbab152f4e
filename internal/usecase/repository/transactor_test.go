package repository

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/project/dbcentral/internal/entity"
)

var fNoError = func(ctx context.Context) error {
	return nil
}

var fError = func(ctx context.Context) error {
	return errInternal
}

func Test_transactorImpl_WithTx(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(ctx context.Context) error
		errL       errLayer
		errRequire error
	}{
		{
			name:       "ok create new tx",
			f:          fNoError,
			errL:       null,
			errRequire: nil,
		},

		{
			name:       "error in function",
			f:          fError,
			errL:       f,
			errRequire: errInternal,
		},

		{
			name:       "error in begin transaction",
			f:          nil,
			errL:       beginTx,
			errRequire: entity.ErrOperation,
		},

		{
			name:       "error in commit transaction",
			f:          fNoError,
			errL:       commitTx,
			errRequire: entity.ErrOperation,
		},

		{
			name:       "error in RollBack transaction",
			f:          fError,
			errL:       rollBackTx,
			errRequire: errInternal,
		},
	}
	logger, e := zap.NewProduction()
	require.NoError(t, e)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewPool()
			require.NoError(t, err)

			ctx := context.Background()
			tErrL := tt.errL

			begin := mock.ExpectBegin()
			if tErrL == beginTx {
				begin.WillReturnError(errInternal)
			}

			switch tErrL {
			case null:
				mock.ExpectCommit()
			case commitTx:
				mock.ExpectCommit().WillReturnError(errInternal)
			case f:
				mock.ExpectRollback()
			case rollBackTx:
				mock.ExpectRollback().WillReturnError(errInternal)
			}

			transactor := NewTransactor(logger, mock)

			err = transactor.WithTx(ctx, tt.f)
			if tt.errRequire == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.errRequire)
		})
	}
}

func Test_extractTx(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		errRequire error
	}{
		{
			name:       "ok extract",
			errRequire: nil,
		},

		{
			name:       "extract with failure",
			errRequire: ErrTxNotFound,
		},
	}
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tErr := tt.errRequire
			ctx := context.Background()
			if tErr == nil {
				ctx = insertTxInMock(ctx, mock)
			}

			tx, e := extractTx(ctx)
			require.ErrorIs(t, e, tErr)
			if e != nil {
				require.Nil(t, tx)
			}
		})
	}
}
