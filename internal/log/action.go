package log

type Action = string

const (
	CreateAuthor  Action = "CreateAuthor"
	GetAuthor            = "GetAuthor"
	LookupAuthor         = "LookupAuthor"
	ListAuthors          = "ListAuthors"
	UpdateAuthor         = "UpdateAuthor"
	DeleteAuthor         = "DeleteAuthor"
	SearchAuthors        = "SearchAuthors"
	FindAuthors          = "FindAuthors"
	CountAuthors         = "CountAuthors"

	CreateBook      = "CreateBook"
	GetBook         = "GetBook"
	LookupBook      = "LookupBook"
	ListBooks       = "ListBooks"
	ListAuthorBooks = "ListAuthorBooks"
	UpdateBook      = "UpdateBook"
	DeleteBook      = "DeleteBook"
	SearchBooks     = "SearchBooks"
	FindBooks       = "FindBooks"
	CountBooks      = "CountBooks"
)
