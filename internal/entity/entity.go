package entity

import "time"

// Author owns zero or more books. Email is unique across authors.
type Author struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Book always references an existing author. Deleting the author
// deletes the book.
type Book struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	AuthorID  int64     `db:"author_id" json:"author_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// AuthorUpdate carries a partial update. Nil fields stay untouched.
type AuthorUpdate struct {
	Name  *string
	Email *string
}

func (u AuthorUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil
}

// BookUpdate carries a partial update. Nil fields stay untouched.
type BookUpdate struct {
	Title    *string
	Content  *string
	AuthorID *int64
}

func (u BookUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.AuthorID == nil
}
