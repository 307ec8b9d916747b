package authHandler

import (
	"errors"
	"time"

	"blogserver/internal/api/auth"
	contextPkg "blogserver/pkg/context"
	"blogserver/pkg/flash"
	"blogserver/pkg/handlerUtil"
	jwtPkg "blogserver/pkg/jwt"
	"blogserver/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AuthHandler) HandleRegisterForm(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"page":  "register",
		"flash": flash.Get(ctx),
	})
}

func (h *AuthHandler) HandleRegister(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing register request")

	var req auth.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	session, err := h.authService.User().RegisterUser(c, req)
	if err != nil {
		if errors.Is(err, auth.ErrEmailAlreadyRegistered) {
			return errHandler.HandleFlashRedirect(ctx, requestID,
				"A user with that email already exists.", "/login")
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "register_user")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.setSessionCookie(ctx, session)
		return errHandler.HandleRedirect(ctx, "/")
	}
}

func (h *AuthHandler) HandleLoginForm(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"page":  "login",
		"flash": flash.Get(ctx),
	})
}

func (h *AuthHandler) HandleLogin(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing login request")

	var req auth.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	session, err := h.authService.Session().Login(c, req)
	if err != nil {
		if errors.Is(err, auth.ErrEmailNotRegistered) {
			return errHandler.HandleFlashRedirect(ctx, requestID,
				"That email does not exist. Please try again.", "/login")
		}
		if errors.Is(err, auth.ErrPasswordIncorrect) {
			return errHandler.HandleFlashRedirect(ctx, requestID,
				"Password incorrect. Please try again.", "/login")
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "login")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.setSessionCookie(ctx, session)
		return errHandler.HandleRedirect(ctx, "/")
	}
}

func (h *AuthHandler) HandleLogout(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	sessionID := jwtPkg.GetSessionID(ctx)
	if err := h.authService.Session().Logout(c, sessionID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "logout")
	}

	h.clearSessionCookie(ctx)
	return errHandler.HandleRedirect(ctx, "/")
}
