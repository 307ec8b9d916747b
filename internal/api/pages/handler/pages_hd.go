package pagesHandler

import (
	"time"

	"blogserver/internal/api/pages"
	contextPkg "blogserver/pkg/context"
	"blogserver/pkg/flash"
	"blogserver/pkg/handlerUtil"
	jwtPkg "blogserver/pkg/jwt"
	"blogserver/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *PagesHandler) HandleAbout(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"page":  "about",
		"user":  jwtPkg.GetSessionUser(ctx),
		"flash": flash.Get(ctx),
	})
}

func (h *PagesHandler) HandleContactForm(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"page":  "contact",
		"user":  jwtPkg.GetSessionUser(ctx),
		"flash": flash.Get(ctx),
	})
}

func (h *PagesHandler) HandleContact(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing contact request")

	var req pages.ContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.pagesService.SendContactMessage(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "send_contact_message")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleFlashRedirect(ctx, requestID,
			"Your message has been sent. Thank you!", "/contact")
	}
}
