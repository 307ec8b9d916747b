package postService

import (
	"context"
	"mime/multipart"

	posts "blogserver/internal/api/post"
	postRepository "blogserver/internal/api/post/repository"
	"blogserver/internal/entity"
	"blogserver/pkg/s3"
	"blogserver/pkg/utils"

	"github.com/sirupsen/logrus"
)

// PostDateLayout is how publication dates are rendered and stored.
const PostDateLayout = "January 02, 2006"

type IPostsService interface {
	CreatePost(ctx context.Context, req posts.CreatePostRequest, author entity.SessionUser, imageFile *multipart.FileHeader) error
	GetAllPosts(ctx context.Context) (*posts.PostListResponse, error)
	GetPostByID(ctx context.Context, id string) (*posts.PostDetailResponse, error)
	UpdatePost(ctx context.Context, id string, req posts.UpdatePostRequest, editor entity.SessionUser, imageFile *multipart.FileHeader) error
	DeletePost(ctx context.Context, id string, identity entity.SessionUser) error
	CreateComment(ctx context.Context, postID string, req posts.CreateCommentRequest, author entity.SessionUser) error
	DeleteComment(ctx context.Context, commentID string, postID string, identity entity.SessionUser) error
}

type postsService struct {
	log       *logrus.Logger
	postsRepo postRepository.Repository
	s3Client  s3.ItfS3
	utils     utils.IUtils
}

func NewPostsService(
	log *logrus.Logger,
	postsRepo postRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IPostsService {
	return &postsService{
		log:       log,
		postsRepo: postsRepo,
		s3Client:  s3Client,
		utils:     utils,
	}
}
