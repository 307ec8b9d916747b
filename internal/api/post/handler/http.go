package postHandler

import (
	postService "blogserver/internal/api/post/service"
	"blogserver/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PostHandler struct {
	log          *logrus.Logger
	postsService postService.IPostsService
	validator    *validator.Validate
	middleware   middleware.Middleware
}

func New(
	log *logrus.Logger,
	ps postService.IPostsService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *PostHandler {
	return &PostHandler{
		log:          log,
		postsService: ps,
		validator:    validate,
		middleware:   middleware,
	}
}

func (h *PostHandler) Start(srv fiber.Router) {
	srv.Get("/", h.middleware.NewOptionalSessionMiddleware, h.HandleGetAllPosts)
	srv.Get("/post/:id", h.middleware.NewOptionalSessionMiddleware, h.HandleGetPost)
	srv.Post("/post/:id", h.middleware.NewOptionalSessionMiddleware, h.HandleCreateComment)
	srv.Get("/new-post", h.middleware.NewSessionMiddleware, h.HandleNewPostForm)
	srv.Post("/new-post", h.middleware.NewSessionMiddleware, h.HandleCreatePost)
	srv.Get("/edit-post/:id", h.middleware.NewSessionMiddleware, h.HandleEditPostForm)
	srv.Post("/edit-post/:id", h.middleware.NewSessionMiddleware, h.HandleUpdatePost)
	srv.Get("/delete/:id", h.middleware.NewSessionMiddleware, h.HandleDeletePost)
	srv.Get("/delete_comment/:comment_id/:post_id", h.middleware.NewSessionMiddleware, h.HandleDeleteComment)
}
