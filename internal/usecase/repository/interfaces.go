package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/project/dbcentral/internal/entity"
)

type (
	AuthorRepository interface {
		CreateAuthor(ctx context.Context, author entity.Author) (entity.Author, error)
		GetAuthor(ctx context.Context, id int64) (entity.Author, error)
		ListAuthors(ctx context.Context, limit int) ([]entity.Author, error)
		UpdateAuthor(ctx context.Context, id int64, upd entity.AuthorUpdate) error
		DeleteAuthor(ctx context.Context, id int64) (bool, error)
		FindAuthors(ctx context.Context, conds ...Condition) ([]entity.Author, error)
		CountAuthors(ctx context.Context, conds ...Condition) (int64, error)
		SearchAuthorsByName(ctx context.Context, query string) ([]entity.Author, error)
	}

	BooksRepository interface {
		CreateBook(ctx context.Context, book entity.Book) (entity.Book, error)
		GetBook(ctx context.Context, id int64) (entity.Book, error)
		ListBooks(ctx context.Context, limit int) ([]entity.Book, error)
		ListAuthorBooks(ctx context.Context, authorID int64) ([]entity.Book, error)
		UpdateBook(ctx context.Context, id int64, upd entity.BookUpdate) error
		DeleteBook(ctx context.Context, id int64) (bool, error)
		FindBooks(ctx context.Context, conds ...Condition) ([]entity.Book, error)
		CountBooks(ctx context.Context, conds ...Condition) (int64, error)
		SearchBooks(ctx context.Context, query string) ([]entity.Book, error)
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}

	// DB is what the repository and transactor need from the session
	// manager (or a mock pool).
	DB interface {
		Begin(ctx context.Context) (pgx.Tx, error)
		Querier
	}

	// Querier is the query subset shared by pools and transactions.
	Querier interface {
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	}
)
