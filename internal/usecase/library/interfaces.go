package library

import (
	"context"

	"github.com/project/dbcentral/internal/entity"
	"github.com/project/dbcentral/internal/usecase/repository"
)

type (
	AuthorUseCase interface {
		CreateAuthor(ctx context.Context, name, email string) (entity.Author, error)
		// GetAuthor surfaces absence as entity.ErrAuthorNotFound.
		GetAuthor(ctx context.Context, id int64) (entity.Author, error)
		// LookupAuthor is the soft variant: absence is (zero, false, nil).
		LookupAuthor(ctx context.Context, id int64) (entity.Author, bool, error)
		ListAuthors(ctx context.Context, limit int) ([]entity.Author, error)
		UpdateAuthor(ctx context.Context, id int64, upd entity.AuthorUpdate) (entity.Author, error)
		// DeleteAuthor cascades to the author's books. Reports false when
		// no such author existed; that is not an error.
		DeleteAuthor(ctx context.Context, id int64) (bool, error)
		SearchAuthorsByName(ctx context.Context, query string) ([]entity.Author, error)
		FindAuthors(ctx context.Context, conds ...repository.Condition) ([]entity.Author, error)
		CountAuthors(ctx context.Context, conds ...repository.Condition) (int64, error)
	}

	BooksUseCase interface {
		CreateBook(ctx context.Context, title, content string, authorID int64) (entity.Book, error)
		GetBook(ctx context.Context, id int64) (entity.Book, error)
		LookupBook(ctx context.Context, id int64) (entity.Book, bool, error)
		ListBooks(ctx context.Context, limit int) ([]entity.Book, error)
		ListAuthorBooks(ctx context.Context, authorID int64) ([]entity.Book, error)
		UpdateBook(ctx context.Context, id int64, upd entity.BookUpdate) (entity.Book, error)
		DeleteBook(ctx context.Context, id int64) (bool, error)
		SearchBooks(ctx context.Context, query string) ([]entity.Book, error)
		FindBooks(ctx context.Context, conds ...repository.Condition) ([]entity.Book, error)
		CountBooks(ctx context.Context, conds ...repository.Condition) (int64, error)
	}
)
