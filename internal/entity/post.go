package entity

import "time"

type Post struct {
	ID         string    `db:"id"`
	Title      string    `db:"title"`
	Subtitle   string    `db:"subtitle"`
	Date       string    `db:"date"`
	Body       string    `db:"body"`
	ImgURL     string    `db:"img_url"`
	AuthorID   string    `db:"author_id"`
	AuthorName string    `db:"author_name"`
	CreatedAt  time.Time `db:"created_at"`
}
