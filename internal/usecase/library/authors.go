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

func (l *libraryImpl) CreateAuthor(ctx context.Context, name, email string) (entity.Author, error) {
	start := time.Now()
	defer observe(log.CreateAuthor, start)

	span := trace.SpanFromContext(ctx)
	opID := uuid.NewString()
	log.InfoCreateAuthor(l.logger, "start of create author", opID, name, email)

	name, err := validate.Name(name)
	if err == nil {
		email, err = validate.Email(email)
	}

	if log.ErrorCreateAuthor(l.logger, err, "invalid author input", opID, name, email) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	var author entity.Author
	err = l.do(ctx, func(ctx context.Context) error {
		taken, txErr := l.authorRepository.CountAuthors(ctx, repository.Eq("email", email))

		if txErr != nil {
			return txErr
		}

		if taken > 0 {
			return fmt.Errorf("%q: %w", email, entity.ErrDuplicateEmail)
		}

		author, txErr = l.authorRepository.CreateAuthor(ctx, entity.Author{
			Name:  name,
			Email: email,
		})

		return txErr
	})

	if log.ErrorCreateAuthor(l.logger, err, "failed create author", opID, name, email) {
		span.SetAttributes(attribute.String("author_name", name))
		span.RecordError(err)
		return entity.Author{}, err
	}

	span.SetAttributes(attribute.Int64("author_id", author.ID))
	log.InfoCreateAuthor(l.logger, "created the author", opID, name, email, author.ID)
	return author, nil
}

func (l *libraryImpl) GetAuthor(ctx context.Context, id int64) (entity.Author, error) {
	start := time.Now()
	defer observe(log.GetAuthor, start)

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int64("author_id", id))
	opID := uuid.NewString()

	if err := validate.ID(id); err != nil {
		span.RecordError(err)
		return entity.Author{}, err
	}

	var author entity.Author
	err := l.do(ctx, func(ctx context.Context) error {
		var txErr error
		author, txErr = l.authorRepository.GetAuthor(ctx, id)
		return txErr
	})

	if log.ErrorAuthorByID(l.logger, err, "failed get author", opID, log.GetAuthor, id) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	log.InfoAuthorByID(l.logger, "got the author", opID, log.GetAuthor, id)
	return author, nil
}

// LookupAuthor treats absence as a normal outcome.
func (l *libraryImpl) LookupAuthor(ctx context.Context, id int64) (entity.Author, bool, error) {
	start := time.Now()
	defer observe(log.LookupAuthor, start)

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int64("author_id", id))

	if err := validate.ID(id); err != nil {
		span.RecordError(err)
		return entity.Author{}, false, err
	}

	var author entity.Author
	err := l.do(ctx, func(ctx context.Context) error {
		var txErr error
		author, txErr = l.authorRepository.GetAuthor(ctx, id)
		return txErr
	})

	if errors.Is(err, entity.ErrAuthorNotFound) {
		return entity.Author{}, false, nil
	}

	if err != nil {
		span.RecordError(err)
		return entity.Author{}, false, err
	}

	return author, true, nil
}

func (l *libraryImpl) ListAuthors(ctx context.Context, limit int) ([]entity.Author, error) {
	start := time.Now()
	defer observe(log.ListAuthors, start)

	opID := uuid.NewString()

	var authors []entity.Author
	err := l.do(ctx, func(ctx context.Context) error {
		var txErr error
		authors, txErr = l.authorRepository.ListAuthors(ctx, limit)
		return txErr
	})

	if log.ErrorListAuthors(l.logger, err, "failed list authors", opID, log.ListAuthors) {
		return nil, err
	}

	return authors, nil
}

func (l *libraryImpl) UpdateAuthor(ctx context.Context, id int64, upd entity.AuthorUpdate) (entity.Author, error) {
	start := time.Now()
	defer observe(log.UpdateAuthor, start)

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int64("author_id", id))
	opID := uuid.NewString()
	log.InfoAuthorByID(l.logger, "start of update author", opID, log.UpdateAuthor, id)

	err := validate.ID(id)

	if err == nil && upd.Empty() {
		err = fmt.Errorf("no fields to update: %w", entity.ErrValidation)
	}

	if err == nil && upd.Name != nil {
		var name string
		if name, err = validate.Name(*upd.Name); err == nil {
			upd.Name = &name
		}
	}

	if err == nil && upd.Email != nil {
		var email string
		if email, err = validate.Email(*upd.Email); err == nil {
			upd.Email = &email
		}
	}

	if log.ErrorAuthorByID(l.logger, err, "invalid author update", opID, log.UpdateAuthor, id) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	var author entity.Author
	err = l.do(ctx, func(ctx context.Context) error {
		if upd.Email != nil {
			owners, txErr := l.authorRepository.FindAuthors(ctx, repository.Eq("email", *upd.Email))

			if txErr != nil {
				return txErr
			}

			for _, other := range owners {
				if other.ID != id {
					return fmt.Errorf("%q: %w", *upd.Email, entity.ErrDuplicateEmail)
				}
			}
		}

		if txErr := l.authorRepository.UpdateAuthor(ctx, id, upd); txErr != nil {
			return txErr
		}

		var txErr error
		author, txErr = l.authorRepository.GetAuthor(ctx, id)
		return txErr
	})

	if log.ErrorAuthorByID(l.logger, err, "failed update author", opID, log.UpdateAuthor, id) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	log.InfoAuthorByID(l.logger, "updated the author", opID, log.UpdateAuthor, id)
	return author, nil
}

// DeleteAuthor removes the author and all books referencing it.
func (l *libraryImpl) DeleteAuthor(ctx context.Context, id int64) (bool, error) {
	start := time.Now()
	defer observe(log.DeleteAuthor, start)

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int64("author_id", id))
	opID := uuid.NewString()

	if err := validate.ID(id); err != nil {
		span.RecordError(err)
		return false, err
	}

	var deleted bool
	err := l.do(ctx, func(ctx context.Context) error {
		var txErr error
		deleted, txErr = l.authorRepository.DeleteAuthor(ctx, id)
		return txErr
	})

	if log.ErrorAuthorByID(l.logger, err, "failed delete author", opID, log.DeleteAuthor, id) {
		span.RecordError(err)
		return false, err
	}

	log.InfoAuthorByID(l.logger, "deleted the author", opID, log.DeleteAuthor, id)
	return deleted, nil
}

func (l *libraryImpl) SearchAuthorsByName(ctx context.Context, query string) ([]entity.Author, error) {
	start := time.Now()
	defer observe(log.SearchAuthors, start)

	span := trace.SpanFromContext(ctx)
	opID := uuid.NewString()

	query, err := validate.Query(query)

	if log.ErrorSearchAuthors(l.logger, err, "invalid author search", opID, query) {
		span.RecordError(err)
		return nil, err
	}

	var authors []entity.Author
	err = l.do(ctx, func(ctx context.Context) error {
		var txErr error
		authors, txErr = l.authorRepository.SearchAuthorsByName(ctx, query)
		return txErr
	})

	if log.ErrorSearchAuthors(l.logger, err, "failed author search", opID, query) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoSearchAuthors(l.logger, "author search done", opID, query, len(authors))
	return authors, nil
}

func (l *libraryImpl) FindAuthors(ctx context.Context, conds ...repository.Condition) ([]entity.Author, error) {
	start := time.Now()
	defer observe(log.FindAuthors, start)

	opID := uuid.NewString()

	var authors []entity.Author
	err := l.do(ctx, func(ctx context.Context) error {
		var txErr error
		authors, txErr = l.authorRepository.FindAuthors(ctx, conds...)
		return txErr
	})

	if log.ErrorListAuthors(l.logger, err, "failed find authors", opID, log.FindAuthors) {
		return nil, err
	}

	return authors, nil
}

func (l *libraryImpl) CountAuthors(ctx context.Context, conds ...repository.Condition) (int64, error) {
	start := time.Now()
	defer observe(log.CountAuthors, start)

	opID := uuid.NewString()

	var count int64
	err := l.do(ctx, func(ctx context.Context) error {
		var txErr error
		count, txErr = l.authorRepository.CountAuthors(ctx, conds...)
		return txErr
	})

	if log.ErrorListAuthors(l.logger, err, "failed count authors", opID, log.CountAuthors) {
		return 0, err
	}

	return count, nil
}
