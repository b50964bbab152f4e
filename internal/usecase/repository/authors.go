package repository

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/project/dbcentral/internal/database"
	"github.com/project/dbcentral/internal/entity"
	"github.com/project/dbcentral/pkg/logger"
)

const authorColumns = "id, name, email, created_at, updated_at"

func (p *postgresRepository) CreateAuthor(ctx context.Context, author entity.Author) (entity.Author, error) {
	const query = `
INSERT INTO author (name, email)
VALUES ($1, $2)
RETURNING id, created_at, updated_at
`
	result := entity.Author{
		Name:  author.Name,
		Email: author.Email,
	}

	err := p.q(ctx).QueryRow(ctx, query, author.Name, author.Email).
		Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)

	if err != nil {
		return entity.Author{}, database.Classify(err)
	}

	logger.MakeInfo(p.logger, "author row inserted", zap.Int64("author_id", result.ID))
	return result, nil
}

func (p *postgresRepository) GetAuthor(ctx context.Context, id int64) (entity.Author, error) {
	const query = `
SELECT ` + authorColumns + `
FROM author
WHERE id = $1
`
	return collectOne[entity.Author](ctx, p.q(ctx), query, []any{id}, entity.ErrAuthorNotFound)
}

func (p *postgresRepository) ListAuthors(ctx context.Context, limit int) ([]entity.Author, error) {
	const query = `
SELECT ` + authorColumns + `
FROM author
`
	return listAll[entity.Author](ctx, p.q(ctx), query, limit)
}

func (p *postgresRepository) UpdateAuthor(ctx context.Context, id int64, upd entity.AuthorUpdate) error {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	if upd.Name != nil {
		args = append(args, *upd.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}

	if upd.Email != nil {
		args = append(args, *upd.Email)
		sets = append(sets, fmt.Sprintf("email = $%d", len(args)))
	}

	query := "UPDATE author SET " + strings.Join(sets, ", ") + " WHERE id = $1"

	tag, err := p.q(ctx).Exec(ctx, query, args...)

	if err != nil {
		return database.Classify(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrAuthorNotFound
	}

	return nil
}

// DeleteAuthor removes the author row; the books cascade via the foreign
// key. Reports false when no such author existed.
func (p *postgresRepository) DeleteAuthor(ctx context.Context, id int64) (bool, error) {
	deleted, err := deleteByID(ctx, p.q(ctx), "author", id)

	if err == nil && deleted {
		logger.MakeInfo(p.logger, "author row deleted with its books", zap.Int64("author_id", id))
	}

	return deleted, err
}

func (p *postgresRepository) FindAuthors(ctx context.Context, conds ...Condition) ([]entity.Author, error) {
	const query = `
SELECT ` + authorColumns + `
FROM author
`
	return findWhere[entity.Author](ctx, p.q(ctx), query, authorFields, conds)
}

func (p *postgresRepository) CountAuthors(ctx context.Context, conds ...Condition) (int64, error) {
	return countWhere(ctx, p.q(ctx), "author", authorFields, conds)
}

func (p *postgresRepository) SearchAuthorsByName(ctx context.Context, query string) ([]entity.Author, error) {
	const sql = `
SELECT ` + authorColumns + `
FROM author
WHERE name ILIKE $1
`
	pattern := "%" + escapeLike(query) + "%"
	return collectAll[entity.Author](ctx, p.q(ctx), sql, []any{pattern})
}
