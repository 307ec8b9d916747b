package pagesHandler

import (
	pagesService "blogserver/internal/api/pages/service"
	"blogserver/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PagesHandler struct {
	log          *logrus.Logger
	pagesService pagesService.IPagesService
	validator    *validator.Validate
	middleware   middleware.Middleware
}

func New(
	log *logrus.Logger,
	ps pagesService.IPagesService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *PagesHandler {
	return &PagesHandler{
		log:          log,
		pagesService: ps,
		validator:    validate,
		middleware:   middleware,
	}
}

func (h *PagesHandler) Start(srv fiber.Router) {
	srv.Get("/about", h.middleware.NewOptionalSessionMiddleware, h.HandleAbout)
	srv.Get("/contact", h.middleware.NewOptionalSessionMiddleware, h.HandleContactForm)
	srv.Post("/contact", h.middleware.NewRateLimiter, h.HandleContact)
}
