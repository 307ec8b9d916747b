package authHandler

import (
	"time"

	"blogserver/internal/api/auth"
	authService "blogserver/internal/api/auth/service"
	"blogserver/internal/middleware"
	jwtPkg "blogserver/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	authService authService.AuthService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *AuthHandler {
	return &AuthHandler{
		log:         log,
		authService: as,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	srv.Get("/register", h.HandleRegisterForm)
	srv.Post("/register", h.middleware.NewRateLimiter, h.HandleRegister)
	srv.Get("/login", h.HandleLoginForm)
	srv.Post("/login", h.middleware.NewRateLimiter, h.HandleLogin)
	srv.Get("/logout", h.middleware.NewOptionalSessionMiddleware, h.HandleLogout)
}

func (h *AuthHandler) setSessionCookie(ctx *fiber.Ctx, session auth.SessionResponse) {
	ctx.Cookie(&fiber.Cookie{
		Name:     jwtPkg.SessionCookieName,
		Value:    session.SessionToken,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  session.ExpiresAt,
	})
}

func (h *AuthHandler) clearSessionCookie(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     jwtPkg.SessionCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
}
