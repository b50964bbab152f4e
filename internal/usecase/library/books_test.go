package library

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/project/dbcentral/internal/entity"
	"github.com/project/dbcentral/internal/usecase/repository"
)

var errInternalBooks = errors.New("internal error")

func TestCreateBook(t *testing.T) {
	t.Parallel()

	const (
		title    = "Moby-Dick"
		content  = "Call me Ishmael."
		authorID = int64(1)
	)

	tests := []struct {
		name       string
		authorErr  error
		createErr  error
		requireErr error
	}{
		{name: "valid creation"},
		{name: "author does not exist",
			authorErr:  entity.ErrAuthorNotFound,
			requireErr: entity.ErrAuthorNotFound},
		{name: "create with internal error",
			createErr:  errInternalBooks,
			requireErr: errInternalBooks},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, mockAuthorRepo, mockBooksRepo, s := initLibraryTest(t)

			mockAuthorRepo.EXPECT().GetAuthor(ctx, authorID).
				Return(entity.Author{ID: authorID}, test.authorErr)

			if test.authorErr == nil {
				mockBooksRepo.EXPECT().CreateBook(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, input entity.Book) (entity.Book, error) {
						if test.createErr != nil {
							return entity.Book{}, test.createErr
						}
						input.ID = 1
						return input, nil
					})
			}

			book, err := s.CreateBook(ctx, title, content, authorID)
			if test.requireErr != nil {
				require.ErrorIs(t, err, test.requireErr)
				require.Empty(t, book)
				return
			}

			require.NoError(t, err)
			require.Equal(t, int64(1), book.ID)
			require.Equal(t, title, book.Title)
			require.Equal(t, content, book.Content)
			require.Equal(t, authorID, book.AuthorID)
		})
	}
}

func TestCreateBookValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		title    string
		content  string
		authorID int64
	}{
		{name: "empty title", title: "", content: "text", authorID: 1},
		{name: "blank title", title: "   ", content: "text", authorID: 1},
		{name: "title too long", title: string(make([]byte, 201)), content: "text", authorID: 1},
		{name: "empty content", title: "ok", content: "", authorID: 1},
		{name: "zero author id", title: "ok", content: "text", authorID: 0},
		{name: "negative author id", title: "ok", content: "text", authorID: -1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, _, _, s := initLibraryTest(t)

			book, err := s.CreateBook(ctx, test.title, test.content, test.authorID)
			require.ErrorIs(t, err, entity.ErrValidation)
			require.Empty(t, book)
		})
	}
}

func TestGetBook(t *testing.T) {
	t.Parallel()

	const id = int64(11)

	tests := []struct {
		name        string
		requireBook entity.Book
		requireErr  error
	}{
		{name: "valid get",
			requireBook: entity.Book{ID: id, Title: "Typee", AuthorID: 1}},
		{name: "book not found",
			requireErr: entity.ErrBookNotFound},
		{name: "get with internal error",
			requireErr: errInternalBooks},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, _, mockBooksRepo, s := initLibraryTest(t)
			mockBooksRepo.EXPECT().GetBook(ctx, id).Return(test.requireBook, test.requireErr)

			book, err := s.GetBook(ctx, id)
			if test.requireErr != nil {
				require.ErrorIs(t, err, test.requireErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.requireBook, book)
		})
	}
}

func TestLookupBook(t *testing.T) {
	t.Parallel()

	const id = int64(4)

	tests := []struct {
		name       string
		repoErr    error
		requireOK  bool
		requireErr error
	}{
		{name: "book present", requireOK: true},
		{name: "book absent is not an error",
			repoErr: entity.ErrBookNotFound},
		{name: "lookup with internal error",
			repoErr:    errInternalBooks,
			requireErr: errInternalBooks},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, _, mockBooksRepo, s := initLibraryTest(t)
			mockBooksRepo.EXPECT().GetBook(ctx, id).Return(entity.Book{ID: id}, test.repoErr)

			book, ok, err := s.LookupBook(ctx, id)
			if test.requireErr != nil {
				require.ErrorIs(t, err, test.requireErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.requireOK, ok)
			if ok {
				require.Equal(t, id, book.ID)
			} else {
				require.Empty(t, book)
			}
		})
	}
}

func TestListAuthorBooks(t *testing.T) {
	t.Parallel()

	const authorID = int64(2)
	listed := []entity.Book{{ID: 1, AuthorID: authorID}, {ID: 2, AuthorID: authorID}}

	tests := []struct {
		name       string
		authorErr  error
		requireErr error
	}{
		{name: "valid listing"},
		{name: "author does not exist",
			authorErr:  entity.ErrAuthorNotFound,
			requireErr: entity.ErrAuthorNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, mockAuthorRepo, mockBooksRepo, s := initLibraryTest(t)

			mockAuthorRepo.EXPECT().GetAuthor(ctx, authorID).
				Return(entity.Author{ID: authorID}, test.authorErr)

			if test.authorErr == nil {
				mockBooksRepo.EXPECT().ListAuthorBooks(ctx, authorID).Return(listed, nil)
			}

			books, err := s.ListAuthorBooks(ctx, authorID)
			if test.requireErr != nil {
				require.ErrorIs(t, err, test.requireErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, listed, books)
		})
	}
}

func TestUpdateBook(t *testing.T) {
	t.Parallel()

	const id = int64(6)
	newTitle := "Omoo"
	newAuthor := int64(8)

	tests := []struct {
		name       string
		upd        entity.BookUpdate
		authorErr  error
		updateErr  error
		requireErr error
	}{
		{name: "retitle only",
			upd: entity.BookUpdate{Title: &newTitle}},
		{name: "move to existing author",
			upd: entity.BookUpdate{AuthorID: &newAuthor}},
		{name: "move to missing author",
			upd:        entity.BookUpdate{AuthorID: &newAuthor},
			authorErr:  entity.ErrAuthorNotFound,
			requireErr: entity.ErrAuthorNotFound},
		{name: "update of missing book",
			upd:        entity.BookUpdate{Title: &newTitle},
			updateErr:  entity.ErrBookNotFound,
			requireErr: entity.ErrBookNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, mockAuthorRepo, mockBooksRepo, s := initLibraryTest(t)

			if test.upd.AuthorID != nil {
				mockAuthorRepo.EXPECT().GetAuthor(ctx, *test.upd.AuthorID).
					Return(entity.Author{ID: *test.upd.AuthorID}, test.authorErr)
			}

			if test.authorErr == nil {
				mockBooksRepo.EXPECT().UpdateBook(ctx, id, test.upd).Return(test.updateErr)
			}

			if test.requireErr == nil {
				mockBooksRepo.EXPECT().GetBook(ctx, id).
					Return(entity.Book{ID: id, Title: newTitle}, nil)
			}

			book, err := s.UpdateBook(ctx, id, test.upd)
			if test.requireErr != nil {
				require.ErrorIs(t, err, test.requireErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, id, book.ID)
		})
	}
}

func TestUpdateBookValidation(t *testing.T) {
	t.Parallel()

	blank := "  "
	badID := int64(0)

	tests := []struct {
		name string
		id   int64
		upd  entity.BookUpdate
	}{
		{name: "empty update", id: 1, upd: entity.BookUpdate{}},
		{name: "invalid id", id: 0, upd: entity.BookUpdate{Title: &blank}},
		{name: "blank title", id: 1, upd: entity.BookUpdate{Title: &blank}},
		{name: "blank content", id: 1, upd: entity.BookUpdate{Content: &blank}},
		{name: "invalid target author", id: 1, upd: entity.BookUpdate{AuthorID: &badID}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, _, _, s := initLibraryTest(t)

			_, err := s.UpdateBook(ctx, test.id, test.upd)
			require.ErrorIs(t, err, entity.ErrValidation)
		})
	}
}

func TestDeleteBook(t *testing.T) {
	t.Parallel()

	const id = int64(13)

	tests := []struct {
		name           string
		deleted        bool
		repoErr        error
		requireDeleted bool
		requireErr     error
	}{
		{name: "existing book deleted", deleted: true, requireDeleted: true},
		{name: "missing book reports false"},
		{name: "delete with internal error",
			repoErr:    errInternalBooks,
			requireErr: errInternalBooks},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, _, mockBooksRepo, s := initLibraryTest(t)
			mockBooksRepo.EXPECT().DeleteBook(ctx, id).Return(test.deleted, test.repoErr)

			deleted, err := s.DeleteBook(ctx, id)
			if test.requireErr != nil {
				require.ErrorIs(t, err, test.requireErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.requireDeleted, deleted)
		})
	}
}

func TestSearchBooks(t *testing.T) {
	t.Parallel()

	found := []entity.Book{{ID: 1, Title: "Moby-Dick"}}

	t.Run("valid search", func(t *testing.T) {
		t.Parallel()
		ctx, _, mockBooksRepo, s := initLibraryTest(t)

		mockBooksRepo.EXPECT().SearchBooks(ctx, "whale").Return(found, nil)
		books, err := s.SearchBooks(ctx, "whale")
		require.NoError(t, err)
		require.Equal(t, found, books)
	})

	t.Run("blank query", func(t *testing.T) {
		t.Parallel()
		ctx, _, _, s := initLibraryTest(t)

		_, err := s.SearchBooks(ctx, "")
		require.ErrorIs(t, err, entity.ErrValidation)
	})
}

func TestFindAndCountBooks(t *testing.T) {
	t.Parallel()
	ctx, _, mockBooksRepo, s := initLibraryTest(t)

	cond := repository.Eq("author_id", int64(3))
	found := []entity.Book{{ID: 2, AuthorID: 3}}

	mockBooksRepo.EXPECT().FindBooks(ctx, cond).Return(found, nil)
	books, err := s.FindBooks(ctx, cond)
	require.NoError(t, err)
	require.Equal(t, found, books)

	mockBooksRepo.EXPECT().CountBooks(ctx, cond).Return(int64(1), nil)
	count, err := s.CountBooks(ctx, cond)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestListBooks(t *testing.T) {
	t.Parallel()
	ctx, _, mockBooksRepo, s := initLibraryTest(t)

	listed := []entity.Book{{ID: 1}, {ID: 2}}
	mockBooksRepo.EXPECT().ListBooks(ctx, 5).Return(listed, nil)

	books, err := s.ListBooks(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, listed, books)
}
