package library

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/project/dbcentral/internal/entity"
	"github.com/project/dbcentral/internal/log"
	"github.com/project/dbcentral/internal/usecase/repository"
	"github.com/project/dbcentral/internal/validate"
)

// CreateBook persists a new book after verifying that the referenced
// author exists. A missing author is entity.ErrAuthorNotFound.
func (l *libraryImpl) CreateBook(ctx context.Context, title, content string, authorID int64) (entity.Book, error) {
	start := time.Now()
	defer observe(log.CreateBook, start)

	span := trace.SpanFromContext(ctx)
	opID := uuid.NewString()
	log.InfoCreateBook(l.logger, "start of create book", opID, title, authorID)

	title, err := validate.Title(title)
	if err == nil {
		content, err = validate.Content(content)
	}
	if err == nil {
		err = validate.ID(authorID)
	}

	if log.ErrorCreateBook(l.logger, err, "invalid book input", opID, title, authorID) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	var book entity.Book
	err = l.do(ctx, func(ctx context.Context) error {
		if _, txErr := l.authorRepository.GetAuthor(ctx, authorID); txErr != nil {
			return txErr
		}

		var txErr error
		book, txErr = l.booksRepository.CreateBook(ctx, entity.Book{
			Title:    title,
			Content:  content,
			AuthorID: authorID,
		})

		return txErr
	})

	if log.ErrorCreateBook(l.logger, err, "failed create book", opID, title, authorID) {
		span.SetAttributes(attribute.String("book_title", title))
		span.RecordError(err)
		return entity.Book{}, err
	}

	span.SetAttributes(attribute.Int64("book_id", book.ID))
	log.InfoCreateBook(l.logger, "created the book", opID, title, authorID, book.ID)
	return book, nil
}

func (l *libraryImpl) GetBook(ctx context.Context, id int64) (entity.Book, error) {
	start := time.Now()
	defer observe(log.GetBook, start)

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int64("book_id", id))
	opID := uuid.NewString()

	if err := validate.ID(id); err != nil {
		span.RecordError(err)
		return entity.Book{}, err
	}

	var book entity.Book
	err := l.do(ctx, func(ctx context.Context) error {
		var txErr error
		book, txErr = l.booksRepository.GetBook(ctx, id)
		return txErr
	})

	if log.ErrorBookByID(l.logger, err, "failed get book", opID, log.GetBook, id) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoBookByID(l.logger, "got the book", opID, log.GetBook, id)
	return book, nil
}

// LookupBook treats absence as a normal outcome.
func (l *libraryImpl) LookupBook(ctx context.Context, id int64) (entity.Book, bool, error) {
	start := time.Now()
	defer observe(log.LookupBook, start)

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int64("book_id", id))

	if err := validate.ID(id); err != nil {
		span.RecordError(err)
		return entity.Book{}, false, err
	}

	var book entity.Book
	err := l.do(ctx, func(ctx context.Context) error {
		var txErr error
		book, txErr = l.booksRepository.GetBook(ctx, id)
		return txErr
	})

	if errors.Is(err, entity.ErrBookNotFound) {
		return entity.Book{}, false, nil
	}

	if err != nil {
		span.RecordError(err)
		return entity.Book{}, false, err
	}

	return book, true, nil
}

func (l *libraryImpl) ListBooks(ctx context.Context, limit int) ([]entity.Book, error) {
	start := time.Now()
	defer observe(log.ListBooks, start)

	opID := uuid.NewString()

	var books []entity.Book
	err := l.do(ctx, func(ctx context.Context) error {
		var txErr error
		books, txErr = l.booksRepository.ListBooks(ctx, limit)
		return txErr
	})

	if log.ErrorListBooks(l.logger, err, "failed list books", opID, log.ListBooks) {
		return nil, err
	}

	return books, nil
}

// ListAuthorBooks verifies the author exists before listing, so a missing
// author surfaces as entity.ErrAuthorNotFound instead of an empty list.
func (l *libraryImpl) ListAuthorBooks(ctx context.Context, authorID int64) ([]entity.Book, error) {
	start := time.Now()
	defer observe(log.ListAuthorBooks, start)

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int64("author_id", authorID))
	opID := uuid.NewString()

	if err := validate.ID(authorID); err != nil {
		span.RecordError(err)
		return nil, err
	}

	var books []entity.Book
	err := l.do(ctx, func(ctx context.Context) error {
		if _, txErr := l.authorRepository.GetAuthor(ctx, authorID); txErr != nil {
			return txErr
		}

		var txErr error
		books, txErr = l.booksRepository.ListAuthorBooks(ctx, authorID)
		return txErr
	})

	if log.ErrorAuthorByID(l.logger, err, "failed list author books", opID, log.ListAuthorBooks, authorID) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoAuthorByID(l.logger, "listed the author's books", opID, log.ListAuthorBooks, authorID)
	return books, nil
}

func (l *libraryImpl) UpdateBook(ctx context.Context, id int64, upd entity.BookUpdate) (entity.Book, error) {
	start := time.Now()
	defer observe(log.UpdateBook, start)

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int64("book_id", id))
	opID := uuid.NewString()
	log.InfoBookByID(l.logger, "start of update book", opID, log.UpdateBook, id)

	err := validate.ID(id)

	if err == nil && upd.Empty() {
		err = fmt.Errorf("no fields to update: %w", entity.ErrValidation)
	}

	if err == nil && upd.Title != nil {
		var title string
		if title, err = validate.Title(*upd.Title); err == nil {
			upd.Title = &title
		}
	}

	if err == nil && upd.Content != nil {
		var content string
		if content, err = validate.Content(*upd.Content); err == nil {
			upd.Content = &content
		}
	}

	if err == nil && upd.AuthorID != nil {
		err = validate.ID(*upd.AuthorID)
	}

	if log.ErrorBookByID(l.logger, err, "invalid book update", opID, log.UpdateBook, id) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	var book entity.Book
	err = l.do(ctx, func(ctx context.Context) error {
		if upd.AuthorID != nil {
			if _, txErr := l.authorRepository.GetAuthor(ctx, *upd.AuthorID); txErr != nil {
				return txErr
			}
		}

		if txErr := l.booksRepository.UpdateBook(ctx, id, upd); txErr != nil {
			return txErr
		}

		var txErr error
		book, txErr = l.booksRepository.GetBook(ctx, id)
		return txErr
	})

	if log.ErrorBookByID(l.logger, err, "failed update book", opID, log.UpdateBook, id) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoBookByID(l.logger, "updated the book", opID, log.UpdateBook, id)
	return book, nil
}

func (l *libraryImpl) DeleteBook(ctx context.Context, id int64) (bool, error) {
	start := time.Now()
	defer observe(log.DeleteBook, start)

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int64("book_id", id))
	opID := uuid.NewString()

	if err := validate.ID(id); err != nil {
		span.RecordError(err)
		return false, err
	}

	var deleted bool
	err := l.do(ctx, func(ctx context.Context) error {
		var txErr error
		deleted, txErr = l.booksRepository.DeleteBook(ctx, id)
		return txErr
	})

	if log.ErrorBookByID(l.logger, err, "failed delete book", opID, log.DeleteBook, id) {
		span.RecordError(err)
		return false, err
	}

	log.InfoBookByID(l.logger, "deleted the book", opID, log.DeleteBook, id)
	return deleted, nil
}

func (l *libraryImpl) SearchBooks(ctx context.Context, query string) ([]entity.Book, error) {
	start := time.Now()
	defer observe(log.SearchBooks, start)

	span := trace.SpanFromContext(ctx)
	opID := uuid.NewString()

	query, err := validate.Query(query)

	if log.ErrorSearchBooks(l.logger, err, "invalid book search", opID, query) {
		span.RecordError(err)
		return nil, err
	}

	var books []entity.Book
	err = l.do(ctx, func(ctx context.Context) error {
		var txErr error
		books, txErr = l.booksRepository.SearchBooks(ctx, query)
		return txErr
	})

	if log.ErrorSearchBooks(l.logger, err, "failed book search", opID, query) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoSearchBooks(l.logger, "book search done", opID, query, len(books))
	return books, nil
}

func (l *libraryImpl) FindBooks(ctx context.Context, conds ...repository.Condition) ([]entity.Book, error) {
	start := time.Now()
	defer observe(log.FindBooks, start)

	opID := uuid.NewString()

	var books []entity.Book
	err := l.do(ctx, func(ctx context.Context) error {
		var txErr error
		books, txErr = l.booksRepository.FindBooks(ctx, conds...)
		return txErr
	})

	if log.ErrorListBooks(l.logger, err, "failed find books", opID, log.FindBooks) {
		return nil, err
	}

	return books, nil
}

func (l *libraryImpl) CountBooks(ctx context.Context, conds ...repository.Condition) (int64, error) {
	start := time.Now()
	defer observe(log.CountBooks, start)

	opID := uuid.NewString()

	var count int64
	err := l.do(ctx, func(ctx context.Context) error {
		var txErr error
		count, txErr = l.booksRepository.CountBooks(ctx, conds...)
		return txErr
	})

	if log.ErrorListBooks(l.logger, err, "failed count books", opID, log.CountBooks) {
		return 0, err
	}

	return count, nil
}
