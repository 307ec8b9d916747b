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

type CommentDB struct {
	ID         sql.NullString `db:"id"`
	Text       sql.NullString `db:"text"`
	AuthorID   sql.NullString `db:"author_id"`
	AuthorName sql.NullString `db:"author_name"`
	PostID     sql.NullString `db:"post_id"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r *commentsRepository) CreateComment(ctx context.Context, comment entity.Comment) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         comment.ID,
		"text":       comment.Text,
		"author_id":  comment.AuthorID,
		"post_id":    comment.ParentPostID,
		"created_at": comment.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateComment named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating comment")
		return err
	}

	return nil
}

func (r *commentsRepository) GetCommentByID(ctx context.Context, id string) (entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var comment CommentDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetCommentByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID named query preparation err")
		return entity.Comment{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&comment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetCommentByID no rows found")
			return entity.Comment{}, posts.ErrCommentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID execution err")
		return entity.Comment{}, err
	}

	return r.makeComment(comment), nil
}

func (r *commentsRepository) GetCommentsByPost(ctx context.Context, postID string) ([]entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var commentsList []CommentDB

	argsKV := map[string]interface{}{
		"post_id": postID,
	}

	query, args, err := sqlx.Named(queryGetCommentsByPost, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByPost named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &commentsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByPost execution err")
		return nil, err
	}

	var result []entity.Comment
	for _, commentDB := range commentsList {
		result = append(result, r.makeComment(commentDB))
	}

	return result, nil
}

func (r *commentsRepository) DeleteComment(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteComment no rows affected")
		return posts.ErrCommentNotFound
	}

	return nil
}

func (r *commentsRepository) DeleteCommentsByPost(ctx context.Context, postID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"post_id": postID,
	}

	query, args, err := sqlx.Named(queryDeleteCommentsByPost, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCommentsByPost named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCommentsByPost execution err")
		return err
	}

	return nil
}

func (r *commentsRepository) makeComment(comment CommentDB) entity.Comment {
	return entity.Comment{
		ID:           comment.ID.String,
		Text:         comment.Text.String,
		AuthorID:     comment.AuthorID.String,
		AuthorName:   comment.AuthorName.String,
		ParentPostID: comment.PostID.String,
		CreatedAt:    comment.CreatedAt,
	}
}
