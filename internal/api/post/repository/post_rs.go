package postRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	posts "blogserver/internal/api/post"
	"blogserver/internal/entity"
	contextPkg "blogserver/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type PostDB struct {
	ID         sql.NullString `db:"id"`
	Title      sql.NullString `db:"title"`
	Subtitle   sql.NullString `db:"subtitle"`
	Date       sql.NullString `db:"date"`
	Body       sql.NullString `db:"body"`
	ImgURL     sql.NullString `db:"img_url"`
	AuthorID   sql.NullString `db:"author_id"`
	AuthorName sql.NullString `db:"author_name"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r *postsRepository) CreatePost(ctx context.Context, post entity.Post) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         post.ID,
		"title":      post.Title,
		"subtitle":   post.Subtitle,
		"date":       post.Date,
		"body":       post.Body,
		"img_url":    post.ImgURL,
		"author_id":  post.AuthorID,
		"created_at": post.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreatePost, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreatePost named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating post")
		return err
	}

	return nil
}

func (r *postsRepository) GetPostByID(ctx context.Context, id string) (entity.Post, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var post PostDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetPostByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostByID named query preparation err")
		return entity.Post{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetPostByID no rows found")
			return entity.Post{}, posts.ErrPostNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostByID execution err")
		return entity.Post{}, err
	}

	return r.makePost(post), nil
}

func (r *postsRepository) GetPostByTitle(ctx context.Context, title string) (entity.Post, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var post PostDB

	argsKV := map[string]interface{}{
		"title": title,
	}

	query, args, err := sqlx.Named(queryGetPostByTitle, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostByTitle named query preparation err")
		return entity.Post{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Post{}, posts.ErrPostNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostByTitle execution err")
		return entity.Post{}, err
	}

	return r.makePost(post), nil
}

func (r *postsRepository) GetAllPosts(ctx context.Context) ([]entity.Post, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var postsList []PostDB

	query, args, err := sqlx.Named(queryGetAllPosts, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllPosts named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &postsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllPosts execution err")
		return nil, err
	}

	var result []entity.Post
	for _, postDB := range postsList {
		result = append(result, r.makePost(postDB))
	}

	return result, nil
}

func (r *postsRepository) UpdatePost(ctx context.Context, post entity.Post) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":        post.ID,
		"title":     post.Title,
		"subtitle":  post.Subtitle,
		"date":      post.Date,
		"body":      post.Body,
		"img_url":   post.ImgURL,
		"author_id": post.AuthorID,
	}

	query, args, err := sqlx.Named(queryUpdatePost, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePost named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePost execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePost rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         post.ID,
		}).Warn("UpdatePost no rows affected")
		return posts.ErrPostNotFound
	}

	return nil
}

func (r *postsRepository) DeletePost(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeletePost, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePost named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePost execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePost rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeletePost no rows affected")
		return posts.ErrPostNotFound
	}

	return nil
}

func (r *postsRepository) makePost(post PostDB) entity.Post {
	return entity.Post{
		ID:         post.ID.String,
		Title:      post.Title.String,
		Subtitle:   post.Subtitle.String,
		Date:       post.Date.String,
		Body:       post.Body.String,
		ImgURL:     post.ImgURL.String,
		AuthorID:   post.AuthorID.String,
		AuthorName: post.AuthorName.String,
		CreatedAt:  post.CreatedAt,
	}
}
