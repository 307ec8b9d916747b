package posts

import "time"

type CreatePostRequest struct {
	Title    string `json:"title" form:"title" validate:"required,min=3,max=250"`
	Subtitle string `json:"subtitle" form:"subtitle" validate:"required,max=250"`
	ImgURL   string `json:"img_url" form:"img_url" validate:"omitempty,url,max=250"`
	Body     string `json:"body" form:"body" validate:"required"`
}

type UpdatePostRequest struct {
	Title    string `json:"title" form:"title" validate:"required,min=3,max=250"`
	Subtitle string `json:"subtitle" form:"subtitle" validate:"required,max=250"`
	ImgURL   string `json:"img_url" form:"img_url" validate:"omitempty,url,max=250"`
	Body     string `json:"body" form:"body" validate:"required"`
}

type CreateCommentRequest struct {
	Text string `json:"comment" form:"comment" validate:"required"`
}

type PostResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	Date       string    `json:"date"`
	Body       string    `json:"body"`
	ImgURL     string    `json:"img_url"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
	Total int            `json:"total"`
}

type CommentResponse struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	PostID     string    `json:"post_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type PostDetailResponse struct {
	Post     PostResponse      `json:"post"`
	Comments []CommentResponse `json:"comments"`
}
