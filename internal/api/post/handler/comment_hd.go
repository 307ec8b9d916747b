package postHandler

import (
	"time"

	posts "blogserver/internal/api/post"
	contextPkg "blogserver/pkg/context"
	"blogserver/pkg/handlerUtil"
	jwtPkg "blogserver/pkg/jwt"
	"blogserver/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *PostHandler) HandleCreateComment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create comment request")

	author := jwtPkg.GetSessionUser(ctx)
	if author.IsAnonymous() {
		return errHandler.HandleFlashRedirect(ctx, requestID,
			"You must login or register to comment.", "/login")
	}

	var req posts.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	postID := ctx.Params("id")
	if err := h.postsService.CreateComment(c, postID, req, author); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_comment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleRedirect(ctx, "/post/"+postID)
	}
}

func (h *PostHandler) HandleDeleteComment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	commentID := ctx.Params("comment_id")
	postID := ctx.Params("post_id")

	identity := jwtPkg.GetSessionUser(ctx)
	if err := h.postsService.DeleteComment(c, commentID, postID, identity); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_comment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleRedirect(ctx, "/post/"+postID)
	}
}
