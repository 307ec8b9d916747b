package middleware

import (
	"errors"

	"blogserver/internal/api/auth"
	"blogserver/internal/entity"
	contextPkg "blogserver/pkg/context"
	jwtPkg "blogserver/pkg/jwt"
	"blogserver/pkg/redis"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const SessionTokenSecret = "SESSION_TOKEN_SECRET"

var (
	errNoSession = errors.New("no valid session on request")
	errUserGone  = errors.New("session identity no longer exists")
)

// NewSessionMiddleware rejects requests that do not carry a live session.
func (m *middleware) NewSessionMiddleware(ctx *fiber.Ctx) error {
	user, sessionID, err := m.resolveSession(ctx)
	if err != nil {
		if errors.Is(err, errUserGone) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Not found",
			})
		}
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": err.Error(),
		}).Warn("Session verification failed")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, session invalid or expired",
		})
	}

	ctx.Locals("user", user)
	ctx.Locals("session_id", sessionID)

	return ctx.Next()
}

// NewOptionalSessionMiddleware attaches the identity when a live session is
// present and lets anonymous requests through untouched.
func (m *middleware) NewOptionalSessionMiddleware(ctx *fiber.Ctx) error {
	user, sessionID, err := m.resolveSession(ctx)
	if err != nil {
		if errors.Is(err, errUserGone) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Not found",
			})
		}
		return ctx.Next()
	}

	ctx.Locals("user", user)
	ctx.Locals("session_id", sessionID)

	return ctx.Next()
}

func (m *middleware) resolveSession(ctx *fiber.Ctx) (entity.SessionUser, string, error) {
	token, err := jwtPkg.VerifyTokenCookie(ctx, SessionTokenSecret)
	if err != nil {
		return entity.SessionUser{}, "", errNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return entity.SessionUser{}, "", errNoSession
	}

	sessionID, _ := claims["sid"].(string)
	userID, _ := claims["id"].(string)
	if sessionID == "" || userID == "" {
		return entity.SessionUser{}, "", errNoSession
	}

	c := contextPkg.FromFiberCtx(ctx)

	storedUserID, err := m.redisServer.GetSession(c, sessionID)
	if err != nil {
		if errors.Is(err, redis.ErrSessionNotFound) {
			return entity.SessionUser{}, "", errNoSession
		}
		return entity.SessionUser{}, "", err
	}
	if storedUserID != userID {
		return entity.SessionUser{}, "", errNoSession
	}

	// The session may outlive its user row; reload the identity so role and
	// name are never stale.
	repo, err := m.authRepo.NewClient(false)
	if err != nil {
		return entity.SessionUser{}, "", err
	}

	user, err := repo.Users.GetByID(c, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return entity.SessionUser{}, "", errUserGone
		}
		return entity.SessionUser{}, "", err
	}

	return entity.SessionUser{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, sessionID, nil
}
