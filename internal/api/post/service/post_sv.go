package postService

import (
	"errors"
	"mime/multipart"
	"strings"
	"time"

	posts "blogserver/internal/api/post"
	"blogserver/internal/entity"
	"blogserver/internal/policy"
	contextPkg "blogserver/pkg/context"
	"blogserver/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *postsService) CreatePost(ctx context.Context, req posts.CreatePostRequest, author entity.SessionUser, imageFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !policy.IsAdministrator(author) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    author.ID,
		}).Warn("Non-administrator attempted to create post")
		return posts.ErrNotAdministrator
	}

	repo, err := s.postsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	_, err = repo.Posts.GetPostByTitle(ctx, req.Title)
	if err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"title":      req.Title,
		}).Warn("Post title already exists")
		return posts.ErrTitleAlreadyExists
	}
	if !errors.Is(err, posts.ErrPostNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check existing title")
		return err
	}

	imgURL, err := s.resolveImageURL(ctx, req.ImgURL, "", imageFile)
	if err != nil {
		return err
	}

	postID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	now := time.Now()

	post := entity.Post{
		ID:        postID,
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		Date:      now.Format(PostDateLayout),
		Body:      req.Body,
		ImgURL:    imgURL,
		AuthorID:  author.ID,
		CreatedAt: now,
	}

	if err := repo.Posts.CreatePost(ctx, post); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create post")
		return posts.ErrCreatePost
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return posts.ErrCreatePost
	}

	return nil
}

func (s *postsService) GetAllPosts(ctx context.Context) (*posts.PostListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.postsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	postsList, err := repo.Posts.GetAllPosts(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get posts")
		return nil, err
	}

	response := &posts.PostListResponse{
		Posts: make([]posts.PostResponse, 0, len(postsList)),
		Total: len(postsList),
	}

	for _, post := range postsList {
		response.Posts = append(response.Posts, s.makePostResponse(ctx, post))
	}

	return response, nil
}

func (s *postsService) GetPostByID(ctx context.Context, id string) (*posts.PostDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.postsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	post, err := repo.Posts.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, posts.ErrPostNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Post not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get post")
		}
		return nil, err
	}

	commentsList, err := repo.Comments.GetCommentsByPost(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get comments for post")
		return nil, err
	}

	response := &posts.PostDetailResponse{
		Post:     s.makePostResponse(ctx, post),
		Comments: make([]posts.CommentResponse, 0, len(commentsList)),
	}

	for _, comment := range commentsList {
		response.Comments = append(response.Comments, posts.CommentResponse{
			ID:         comment.ID,
			Text:       comment.Text,
			AuthorID:   comment.AuthorID,
			AuthorName: comment.AuthorName,
			PostID:     comment.ParentPostID,
			CreatedAt:  comment.CreatedAt,
		})
	}

	return response, nil
}

func (s *postsService) UpdatePost(ctx context.Context, id string, req posts.UpdatePostRequest, editor entity.SessionUser, imageFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !policy.IsAdministrator(editor) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    editor.ID,
		}).Warn("Non-administrator attempted to edit post")
		return posts.ErrNotAdministrator
	}

	repo, err := s.postsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existingPost, err := repo.Posts.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, posts.ErrPostNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Post not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get post")
		}
		return err
	}

	if req.Title != existingPost.Title {
		_, err = repo.Posts.GetPostByTitle(ctx, req.Title)
		if err == nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"title":      req.Title,
			}).Warn("Post title already exists")
			return posts.ErrTitleAlreadyExists
		}
		if !errors.Is(err, posts.ErrPostNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to check existing title")
			return err
		}
	}

	imgURL, err := s.resolveImageURL(ctx, req.ImgURL, existingPost.ImgURL, imageFile)
	if err != nil {
		return err
	}

	// Editing reassigns authorship to whoever performed the edit; the id and
	// publication date stay fixed.
	post := entity.Post{
		ID:        id,
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		Date:      existingPost.Date,
		Body:      req.Body,
		ImgURL:    imgURL,
		AuthorID:  editor.ID,
		CreatedAt: existingPost.CreatedAt,
	}

	if err := repo.Posts.UpdatePost(ctx, post); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update post")
		return posts.ErrUpdatePost
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return posts.ErrUpdatePost
	}

	return nil
}

func (s *postsService) DeletePost(ctx context.Context, id string, identity entity.SessionUser) error {
	requestID := contextPkg.GetRequestID(ctx)

	// The source enforced nothing here; deletion is gated on the
	// administrator role instead of staying a public action.
	if !policy.IsAdministrator(identity) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    identity.ID,
		}).Warn("Non-administrator attempted to delete post")
		return posts.ErrNotAdministrator
	}

	repo, err := s.postsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existingPost, err := repo.Posts.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, posts.ErrPostNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Post not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get post")
		}
		return err
	}

	// Comments cascade with their parent post inside the same transaction.
	if err := repo.Comments.DeleteCommentsByPost(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete comments for post")
		return posts.ErrDeletePost
	}

	if err := repo.Posts.DeletePost(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete post")
		return posts.ErrDeletePost
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return posts.ErrDeletePost
	}

	if isS3URL(existingPost.ImgURL) {
		parts := strings.Split(existingPost.ImgURL, "/")
		if len(parts) > 0 {
			fileName := parts[len(parts)-1]
			if err := s.s3Client.DeleteFile(fileName); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"file_name":  fileName,
					"error":      err.Error(),
				}).Warn("Failed to delete image")
			}
		}
	}

	return nil
}

func (s *postsService) makePostResponse(ctx context.Context, post entity.Post) posts.PostResponse {
	requestID := contextPkg.GetRequestID(ctx)

	imgURL := post.ImgURL
	if isS3URL(imgURL) {
		presignedURL, err := s.s3Client.PresignUrl(imgURL)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         post.ID,
				"img_url":    imgURL,
				"error":      err.Error(),
			}).Warn("Failed to create presigned URL for image")
		} else {
			imgURL = presignedURL
		}
	}

	return posts.PostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Subtitle:   post.Subtitle,
		Date:       post.Date,
		Body:       post.Body,
		ImgURL:     imgURL,
		AuthorID:   post.AuthorID,
		AuthorName: post.AuthorName,
		CreatedAt:  post.CreatedAt,
	}
}

// resolveImageURL prefers an uploaded file over the img_url form field; with
// neither, the existing URL is kept, and a brand-new post must supply one.
func (s *postsService) resolveImageURL(ctx context.Context, formURL string, existingURL string, imageFile *multipart.FileHeader) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if imageFile != nil {
		if err := s.utils.ValidateImageFile(imageFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid image file")
			if errors.Is(err, utils.ErrFileTooLarge) {
				return "", posts.ErrFileTooLarge
			}
			return "", posts.ErrInvalidFileType
		}

		uploadedURL, err := s.s3Client.UploadFile(imageFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload image")
			return "", posts.ErrFailedToUpload
		}

		if isS3URL(existingURL) {
			parts := strings.Split(existingURL, "/")
			if len(parts) > 0 {
				fileName := parts[len(parts)-1]
				if err := s.s3Client.DeleteFile(fileName); err != nil {
					s.log.WithFields(logrus.Fields{
						"request_id": requestID,
						"file_name":  fileName,
						"error":      err.Error(),
					}).Warn("Failed to delete old image")
				}
			}
		}

		return uploadedURL, nil
	}

	if formURL != "" {
		return formURL, nil
	}

	if existingURL != "" {
		return existingURL, nil
	}

	return "", posts.ErrImageRequired
}

func isS3URL(fileURL string) bool {
	return strings.Contains(fileURL, ".amazonaws.com/")
}
