package pagesService

import (
	"blogserver/internal/api/pages"
	contextPkg "blogserver/pkg/context"
	"blogserver/pkg/smtp"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IPagesService interface {
	SendContactMessage(ctx context.Context, req pages.ContactRequest) error
}

type pagesService struct {
	log    *logrus.Logger
	mailer smtp.ItfSmtp
}

func NewPagesService(log *logrus.Logger, mailer smtp.ItfSmtp) IPagesService {
	return &pagesService{
		log:    log,
		mailer: mailer,
	}
}

func (s *pagesService) SendContactMessage(ctx context.Context, req pages.ContactRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.mailer.SendContactMessage(req.Name, req.Email, req.Phone, req.Message); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to send contact message")
		return pages.ErrSendMessage
	}

	return nil
}
