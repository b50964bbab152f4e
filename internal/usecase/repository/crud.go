package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/project/dbcentral/internal/database"
)

// Generic helpers shared by the author and book repositories. Each one
// classifies driver errors before returning, so the entity taxonomy is the
// only error surface above this file.

func collectOne[T any](ctx context.Context, q Querier, sql string, args []any, notFound error) (T, error) {
	var zero T

	rows, err := q.Query(ctx, sql, args...)

	if err != nil {
		return zero, database.Classify(err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])

	if errors.Is(err, pgx.ErrNoRows) {
		return zero, notFound
	}

	if err != nil {
		return zero, database.Classify(err)
	}

	return item, nil
}

func collectAll[T any](ctx context.Context, q Querier, sql string, args []any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)

	if err != nil {
		return nil, database.Classify(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])

	if err != nil {
		return nil, database.Classify(err)
	}

	return items, nil
}

func listAll[T any](ctx context.Context, q Querier, baseQuery string, limit int) ([]T, error) {
	if limit > 0 {
		return collectAll[T](ctx, q, baseQuery+fmt.Sprintf("\nLIMIT %d", limit), nil)
	}
	return collectAll[T](ctx, q, baseQuery, nil)
}

func findWhere[T any](ctx context.Context, q Querier, baseQuery string, allowed []string, conds []Condition) ([]T, error) {
	where, args, err := buildWhere(allowed, conds)

	if err != nil {
		return nil, err
	}

	return collectAll[T](ctx, q, baseQuery+where, args)
}

func countWhere(ctx context.Context, q Querier, table string, allowed []string, conds []Condition) (int64, error) {
	where, args, err := buildWhere(allowed, conds)

	if err != nil {
		return 0, err
	}

	var count int64
	err = q.QueryRow(ctx, "SELECT COUNT(*) FROM "+table+where, args...).Scan(&count)

	if err != nil {
		return 0, database.Classify(err)
	}

	return count, nil
}

// deleteByID reports whether a row was removed. Absence is a normal
// outcome, not an error.
func deleteByID(ctx context.Context, q Querier, table string, id int64) (bool, error) {
	tag, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)

	if err != nil {
		return false, database.Classify(err)
	}

	return tag.RowsAffected() > 0, nil
}
