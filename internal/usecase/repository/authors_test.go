package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/project/dbcentral/internal/entity"
)

func initRepoTest(t *testing.T) (context.Context, pgxmock.PgxPoolIface, *postgresRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return context.Background(), mock, New(nil, mock)
}

func authorRows(authors ...entity.Author) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "name", "email", "created_at", "updated_at"})
	for _, a := range authors {
		rows.AddRow(a.ID, a.Name, a.Email, a.CreatedAt, a.UpdatedAt)
	}
	return rows
}

func Test_postgresRepository_CreateAuthor(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name       string
		dbErr      error
		errRequire error
	}{
		{name: "ok insert"},
		{name: "duplicate email",
			dbErr:      &pgconn.PgError{Code: "23505", ConstraintName: "author_email_key"},
			errRequire: entity.ErrDataIntegrity},
		{name: "driver failure",
			dbErr:      errInternal,
			errRequire: entity.ErrOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initRepoTest(t)

			expect := mock.ExpectQuery("INSERT INTO author").
				WithArgs("Ann", "ann@example.com")
			if tt.dbErr != nil {
				expect.WillReturnError(tt.dbErr)
			} else {
				expect.WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
					AddRow(int64(1), now, now))
			}

			author, err := repo.CreateAuthor(ctx, entity.Author{Name: "Ann", Email: "ann@example.com"})
			if tt.errRequire != nil {
				require.ErrorIs(t, err, tt.errRequire)
				return
			}

			require.NoError(t, err)
			require.Equal(t, int64(1), author.ID)
			require.Equal(t, "Ann", author.Name)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func Test_postgresRepository_GetAuthor(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stored := entity.Author{ID: 7, Name: "Ann", Email: "ann@example.com", CreatedAt: now, UpdatedAt: now}

	tests := []struct {
		name       string
		rows       *pgxmock.Rows
		errRequire error
	}{
		{name: "row present", rows: authorRows(stored)},
		{name: "row absent", rows: authorRows(), errRequire: entity.ErrAuthorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initRepoTest(t)
			mock.ExpectQuery("SELECT (.+) FROM author").
				WithArgs(stored.ID).
				WillReturnRows(tt.rows)

			author, err := repo.GetAuthor(ctx, stored.ID)
			if tt.errRequire != nil {
				require.ErrorIs(t, err, tt.errRequire)
				return
			}

			require.NoError(t, err)
			require.Equal(t, stored, author)
		})
	}
}

func Test_postgresRepository_GetAuthorInTx(t *testing.T) {
	t.Parallel()
	ctx, mock, repo := initRepoTest(t)

	now := time.Now()
	stored := entity.Author{ID: 3, Name: "Ann", Email: "ann@example.com", CreatedAt: now, UpdatedAt: now}

	ctx = insertTxInMock(ctx, mock)
	mock.ExpectQuery("SELECT (.+) FROM author").
		WithArgs(stored.ID).
		WillReturnRows(authorRows(stored))

	author, err := repo.GetAuthor(ctx, stored.ID)
	require.NoError(t, err)
	require.Equal(t, stored, author)
	require.NoError(t, mock.ExpectationsWereMet())
}

func Test_postgresRepository_ListAuthors(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stored := []entity.Author{
		{ID: 1, Name: "Ann", Email: "ann@example.com", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Bob", Email: "bob@example.com", CreatedAt: now, UpdatedAt: now},
	}

	t.Run("without limit", func(t *testing.T) {
		t.Parallel()
		ctx, mock, repo := initRepoTest(t)

		mock.ExpectQuery("SELECT (.+) FROM author").
			WillReturnRows(authorRows(stored...))

		authors, err := repo.ListAuthors(ctx, 0)
		require.NoError(t, err)
		require.Equal(t, stored, authors)
	})

	t.Run("with limit", func(t *testing.T) {
		t.Parallel()
		ctx, mock, repo := initRepoTest(t)

		mock.ExpectQuery("SELECT (.+) FROM author(.+)LIMIT 1").
			WillReturnRows(authorRows(stored[0]))

		authors, err := repo.ListAuthors(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, stored[:1], authors)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func Test_postgresRepository_UpdateAuthor(t *testing.T) {
	t.Parallel()

	name := "Renamed"
	email := "renamed@example.com"

	tests := []struct {
		name       string
		upd        entity.AuthorUpdate
		args       []any
		affected   int64
		errRequire error
	}{
		{name: "name only",
			upd:      entity.AuthorUpdate{Name: &name},
			args:     []any{int64(5), name},
			affected: 1},
		{name: "name and email",
			upd:      entity.AuthorUpdate{Name: &name, Email: &email},
			args:     []any{int64(5), name, email},
			affected: 1},
		{name: "no such author",
			upd:        entity.AuthorUpdate{Name: &name},
			args:       []any{int64(5), name},
			affected:   0,
			errRequire: entity.ErrAuthorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initRepoTest(t)
			mock.ExpectExec("UPDATE author SET").
				WithArgs(tt.args...).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			err := repo.UpdateAuthor(ctx, 5, tt.upd)
			if tt.errRequire != nil {
				require.ErrorIs(t, err, tt.errRequire)
				return
			}

			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func Test_postgresRepository_DeleteAuthor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		affected int64
		deleted  bool
	}{
		{name: "row removed", affected: 1, deleted: true},
		{name: "row absent", affected: 0, deleted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initRepoTest(t)
			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM author WHERE id = $1")).
				WithArgs(int64(9)).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			deleted, err := repo.DeleteAuthor(ctx, 9)
			require.NoError(t, err)
			require.Equal(t, tt.deleted, deleted)
		})
	}
}

func Test_postgresRepository_FindAuthors(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stored := entity.Author{ID: 1, Name: "Ann", Email: "ann@example.com", CreatedAt: now, UpdatedAt: now}

	t.Run("known fields", func(t *testing.T) {
		t.Parallel()
		ctx, mock, repo := initRepoTest(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE name = $1 AND email = $2")).
			WithArgs("Ann", "ann@example.com").
			WillReturnRows(authorRows(stored))

		authors, err := repo.FindAuthors(ctx, Eq("name", "Ann"), Eq("email", "ann@example.com"))
		require.NoError(t, err)
		require.Equal(t, []entity.Author{stored}, authors)
	})

	t.Run("unknown field never reaches the database", func(t *testing.T) {
		t.Parallel()
		ctx, mock, repo := initRepoTest(t)

		_, err := repo.FindAuthors(ctx, Eq("password", "secret"))
		require.ErrorIs(t, err, entity.ErrValidation)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func Test_postgresRepository_CountAuthors(t *testing.T) {
	t.Parallel()
	ctx, mock, repo := initRepoTest(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM author")).
		WithArgs("ann@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

	count, err := repo.CountAuthors(ctx, Eq("email", "ann@example.com"))
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func Test_postgresRepository_SearchAuthorsByName(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stored := entity.Author{ID: 1, Name: "Melville", Email: "hm@example.com", CreatedAt: now, UpdatedAt: now}

	tests := []struct {
		name    string
		query   string
		pattern string
	}{
		{name: "plain term", query: "Mel", pattern: "%Mel%"},
		{name: "wildcards are escaped", query: "50%_x", pattern: `%50\%\_x%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initRepoTest(t)
			mock.ExpectQuery("WHERE name ILIKE").
				WithArgs(tt.pattern).
				WillReturnRows(authorRows(stored))

			authors, err := repo.SearchAuthorsByName(ctx, tt.query)
			require.NoError(t, err)
			require.Equal(t, []entity.Author{stored}, authors)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
