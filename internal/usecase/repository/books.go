package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/project/dbcentral/internal/database"
	"github.com/project/dbcentral/internal/entity"
	"github.com/project/dbcentral/pkg/logger"
)

const bookColumns = "id, title, content, author_id, created_at, updated_at"

// authorFKErr maps a foreign-key violation on book writes to the hard
// not-found signal: the referenced author is gone.
func authorFKErr(err error, authorID int64) (error, bool) {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == database.CodeForeignKeyViolation {
		return fmt.Errorf("author with id %d does not exist: %w", authorID, entity.ErrAuthorNotFound), true
	}

	return nil, false
}

func (p *postgresRepository) CreateBook(ctx context.Context, book entity.Book) (entity.Book, error) {
	const query = `
INSERT INTO book (title, content, author_id)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at
`
	result := entity.Book{
		Title:    book.Title,
		Content:  book.Content,
		AuthorID: book.AuthorID,
	}

	err := p.q(ctx).QueryRow(ctx, query, book.Title, book.Content, book.AuthorID).
		Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)

	if err != nil {
		if fkErr, ok := authorFKErr(err, book.AuthorID); ok {
			return entity.Book{}, fkErr
		}
		return entity.Book{}, database.Classify(err)
	}

	logger.MakeInfo(p.logger, "book row inserted",
		zap.Int64("book_id", result.ID),
		zap.Int64("author_id", result.AuthorID))
	return result, nil
}

func (p *postgresRepository) GetBook(ctx context.Context, id int64) (entity.Book, error) {
	const query = `
SELECT ` + bookColumns + `
FROM book
WHERE id = $1
`
	return collectOne[entity.Book](ctx, p.q(ctx), query, []any{id}, entity.ErrBookNotFound)
}

func (p *postgresRepository) ListBooks(ctx context.Context, limit int) ([]entity.Book, error) {
	const query = `
SELECT ` + bookColumns + `
FROM book
`
	return listAll[entity.Book](ctx, p.q(ctx), query, limit)
}

func (p *postgresRepository) ListAuthorBooks(ctx context.Context, authorID int64) ([]entity.Book, error) {
	const query = `
SELECT ` + bookColumns + `
FROM book
WHERE author_id = $1
`
	return collectAll[entity.Book](ctx, p.q(ctx), query, []any{authorID})
}

func (p *postgresRepository) UpdateBook(ctx context.Context, id int64, upd entity.BookUpdate) error {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	if upd.Title != nil {
		args = append(args, *upd.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}

	if upd.Content != nil {
		args = append(args, *upd.Content)
		sets = append(sets, fmt.Sprintf("content = $%d", len(args)))
	}

	if upd.AuthorID != nil {
		args = append(args, *upd.AuthorID)
		sets = append(sets, fmt.Sprintf("author_id = $%d", len(args)))
	}

	query := "UPDATE book SET " + strings.Join(sets, ", ") + " WHERE id = $1"

	tag, err := p.q(ctx).Exec(ctx, query, args...)

	if err != nil {
		if upd.AuthorID != nil {
			if fkErr, ok := authorFKErr(err, *upd.AuthorID); ok {
				return fkErr
			}
		}
		return database.Classify(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrBookNotFound
	}

	return nil
}

func (p *postgresRepository) DeleteBook(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, p.q(ctx), "book", id)
}

func (p *postgresRepository) FindBooks(ctx context.Context, conds ...Condition) ([]entity.Book, error) {
	const query = `
SELECT ` + bookColumns + `
FROM book
`
	return findWhere[entity.Book](ctx, p.q(ctx), query, bookFields, conds)
}

func (p *postgresRepository) CountBooks(ctx context.Context, conds ...Condition) (int64, error) {
	return countWhere(ctx, p.q(ctx), "book", bookFields, conds)
}

// SearchBooks is a case-insensitive substring match over title OR content.
func (p *postgresRepository) SearchBooks(ctx context.Context, query string) ([]entity.Book, error) {
	const sql = `
SELECT ` + bookColumns + `
FROM book
WHERE title ILIKE $1 OR content ILIKE $1
`
	pattern := "%" + escapeLike(query) + "%"
	return collectAll[entity.Book](ctx, p.q(ctx), sql, []any{pattern})
}
