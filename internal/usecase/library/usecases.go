package library

//go:generate mockgen -source=usecases.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"go.uber.org/zap"

	"github.com/project/dbcentral/internal/database"
	"github.com/project/dbcentral/internal/entity"
	"github.com/project/dbcentral/internal/usecase/repository"
)

type (
	AuthorRepository interface {
		CreateAuthor(ctx context.Context, author entity.Author) (entity.Author, error)
		GetAuthor(ctx context.Context, id int64) (entity.Author, error)
		ListAuthors(ctx context.Context, limit int) ([]entity.Author, error)
		UpdateAuthor(ctx context.Context, id int64, upd entity.AuthorUpdate) error
		DeleteAuthor(ctx context.Context, id int64) (bool, error)
		FindAuthors(ctx context.Context, conds ...repository.Condition) ([]entity.Author, error)
		CountAuthors(ctx context.Context, conds ...repository.Condition) (int64, error)
		SearchAuthorsByName(ctx context.Context, query string) ([]entity.Author, error)
	}

	BooksRepository interface {
		CreateBook(ctx context.Context, book entity.Book) (entity.Book, error)
		GetBook(ctx context.Context, id int64) (entity.Book, error)
		ListBooks(ctx context.Context, limit int) ([]entity.Book, error)
		ListAuthorBooks(ctx context.Context, authorID int64) ([]entity.Book, error)
		UpdateBook(ctx context.Context, id int64, upd entity.BookUpdate) error
		DeleteBook(ctx context.Context, id int64) (bool, error)
		FindBooks(ctx context.Context, conds ...repository.Condition) ([]entity.Book, error)
		CountBooks(ctx context.Context, conds ...repository.Condition) (int64, error)
		SearchBooks(ctx context.Context, query string) ([]entity.Book, error)
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)

var _ AuthorUseCase = (*libraryImpl)(nil)
var _ BooksUseCase = (*libraryImpl)(nil)

type libraryImpl struct {
	logger           *zap.Logger
	authorRepository AuthorRepository
	booksRepository  BooksRepository
	transactor       Transactor
	retry            database.RetryConfig
}

func New(
	logger *zap.Logger,
	authorRepository AuthorRepository,
	booksRepository BooksRepository,
	transactor Transactor,
	retry database.RetryConfig,
) *libraryImpl {
	return &libraryImpl{
		logger:           logger,
		authorRepository: authorRepository,
		booksRepository:  booksRepository,
		transactor:       transactor,
		retry:            retry,
	}
}

// do runs op in a fresh transaction scope behind the transient-failure
// retry budget. Validation happens before this point so bad input never
// opens a session.
func (l *libraryImpl) do(ctx context.Context, op func(ctx context.Context) error) error {
	return database.WithRetry(ctx, l.logger, l.retry, func(ctx context.Context) error {
		return l.transactor.WithTx(ctx, op)
	})
}
