package entity

import "time"

// Article represents a text post owned by a single user.
type Article struct {
	ID        int64
	AuthorID  int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
