package postHandler

import (
	"time"

	posts "blogserver/internal/api/post"
	"blogserver/internal/policy"
	contextPkg "blogserver/pkg/context"
	"blogserver/pkg/flash"
	"blogserver/pkg/handlerUtil"
	jwtPkg "blogserver/pkg/jwt"
	"blogserver/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *PostHandler) HandleGetAllPosts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	response, err := h.postsService.GetAllPosts(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_posts")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"page":  "home",
			"posts": response.Posts,
			"total": response.Total,
			"user":  jwtPkg.GetSessionUser(ctx),
			"flash": flash.Get(ctx),
		})
	}
}

func (h *PostHandler) HandleGetPost(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	response, err := h.postsService.GetPostByID(c, ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_post")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"page":     "post",
			"post":     response.Post,
			"comments": response.Comments,
			"user":     jwtPkg.GetSessionUser(ctx),
			"flash":    flash.Get(ctx),
		})
	}
}

func (h *PostHandler) HandleNewPostForm(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	user := jwtPkg.GetSessionUser(ctx)
	if !policy.IsAdministrator(user) {
		return errHandler.HandleForbidden(ctx, requestID)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"page":  "new-post",
		"user":  user,
		"flash": flash.Get(ctx),
	})
}

func (h *PostHandler) HandleCreatePost(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create post request")

	var req posts.CreatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	// The image may arrive as a file upload instead of a URL field.
	imageFile, err := ctx.FormFile("image")
	if err != nil {
		imageFile = nil
	}

	author := jwtPkg.GetSessionUser(ctx)
	if err := h.postsService.CreatePost(c, req, author, imageFile); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_post")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleRedirect(ctx, "/")
	}
}

func (h *PostHandler) HandleEditPostForm(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if !policy.IsAdministrator(jwtPkg.GetSessionUser(ctx)) {
		return errHandler.HandleForbidden(ctx, requestID)
	}

	response, err := h.postsService.GetPostByID(c, ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_post")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"page":  "edit-post",
			"post":  response.Post,
			"user":  jwtPkg.GetSessionUser(ctx),
			"flash": flash.Get(ctx),
		})
	}
}

func (h *PostHandler) HandleUpdatePost(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update post request")

	var req posts.UpdatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	imageFile, err := ctx.FormFile("image")
	if err != nil {
		imageFile = nil
	}

	postID := ctx.Params("id")
	editor := jwtPkg.GetSessionUser(ctx)
	if err := h.postsService.UpdatePost(c, postID, req, editor, imageFile); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_post")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleRedirect(ctx, "/post/"+postID)
	}
}

func (h *PostHandler) HandleDeletePost(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	identity := jwtPkg.GetSessionUser(ctx)
	if err := h.postsService.DeletePost(c, ctx.Params("id"), identity); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_post")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleRedirect(ctx, "/")
	}
}
