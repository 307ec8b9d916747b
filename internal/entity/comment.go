package entity

import "time"

type Comment struct {
	ID           string    `db:"id"`
	Text         string    `db:"text"`
	AuthorID     string    `db:"author_id"`
	AuthorName   string    `db:"author_name"`
	ParentPostID string    `db:"post_id"`
	CreatedAt    time.Time `db:"created_at"`
}
