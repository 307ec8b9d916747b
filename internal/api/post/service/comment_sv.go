package postService

import (
	"errors"
	"time"

	posts "blogserver/internal/api/post"
	"blogserver/internal/entity"
	"blogserver/internal/policy"
	contextPkg "blogserver/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *postsService) CreateComment(ctx context.Context, postID string, req posts.CreateCommentRequest, author entity.SessionUser) error {
	requestID := contextPkg.GetRequestID(ctx)

	if author.IsAnonymous() {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"post_id":    postID,
		}).Warn("Anonymous visitor attempted to comment")
		return posts.ErrNotAuthenticated
	}

	repo, err := s.postsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	_, err = repo.Posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, posts.ErrPostNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"post_id":    postID,
			}).Warn("Post not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"post_id":    postID,
				"error":      err.Error(),
			}).Error("Failed to get post")
		}
		return err
	}

	commentID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	comment := entity.Comment{
		ID:           commentID,
		Text:         req.Text,
		AuthorID:     author.ID,
		ParentPostID: postID,
		CreatedAt:    time.Now(),
	}

	if err := repo.Comments.CreateComment(ctx, comment); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"post_id":    postID,
			"error":      err.Error(),
		}).Error("Failed to create comment")
		return posts.ErrCreateComment
	}

	return nil
}

func (s *postsService) DeleteComment(ctx context.Context, commentID string, postID string, identity entity.SessionUser) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.postsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	comment, err := repo.Comments.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, posts.ErrCommentNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"comment_id": commentID,
			}).Warn("Comment not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"comment_id": commentID,
				"error":      err.Error(),
			}).Error("Failed to get comment")
		}
		return err
	}

	if comment.ParentPostID != postID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"comment_id": commentID,
			"post_id":    postID,
		}).Warn("Comment does not belong to post")
		return posts.ErrCommentNotFound
	}

	// Only the comment's own author may remove it.
	if !policy.IsCommentOwner(identity, comment) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"comment_id": commentID,
			"user_id":    identity.ID,
		}).Warn("User attempted to delete a comment they do not own")
		return posts.ErrCommentNotOwned
	}

	if err := repo.Comments.DeleteComment(ctx, commentID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"comment_id": commentID,
			"error":      err.Error(),
		}).Error("Failed to delete comment")
		return posts.ErrDeleteComment
	}

	return nil
}
