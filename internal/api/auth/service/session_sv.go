package authService

import (
	"errors"

	"blogserver/internal/api/auth"
	contextPkg "blogserver/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *sessionDomainImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.SessionResponse{}, err
	}

	user, err := repo.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      req.Email,
			}).Warn("Login attempt for unknown email")
			return auth.SessionResponse{}, auth.ErrEmailNotRegistered
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.SessionResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password comparison failed")
		return auth.SessionResponse{}, auth.ErrPasswordIncorrect
	}

	session, err := establishSession(ctx, s.redisServer, user)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to establish session")
		return auth.SessionResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Session established")

	return session, nil
}

func (s *sessionDomainImpl) Logout(ctx context.Context, sessionID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if sessionID == "" {
		return nil
	}

	if err := s.redisServer.DeleteSession(ctx, sessionID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete session")
		return err
	}

	return nil
}
