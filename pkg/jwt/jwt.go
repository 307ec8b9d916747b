package jwtPkg

import (
	"errors"
	"fmt"
	"os"
	"time"

	"blogserver/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const SessionCookieName = "session_token"

// Sign issues the signed session token carried in the session cookie.
func Sign(Data map[string]interface{}, ExpiredAt time.Duration) (string, int64, error) {
	expiredAt := time.Now().Add(ExpiredAt).Unix()

	secretKey := os.Getenv("SESSION_TOKEN_SECRET")
	if secretKey == "" {
		return "", 0, fmt.Errorf("SESSION_TOKEN_SECRET not set")
	}

	claims := jwt.MapClaims{}
	claims["exp"] = expiredAt

	for i, v := range Data {
		claims[i] = v
	}

	to := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	sessionToken, err := to.SignedString([]byte(secretKey))
	if err != nil {
		logrus.WithError(err).Error("Failed to sign session token")
		return "", 0, err
	}

	return sessionToken, expiredAt, nil
}

// VerifyTokenCookie parses and verifies the session cookie on the request.
func VerifyTokenCookie(c *fiber.Ctx, secretEnvKey string) (*jwt.Token, error) {
	sessionToken := c.Cookies(SessionCookieName)
	if sessionToken == "" {
		return nil, errors.New("missing session cookie")
	}

	secretKey := os.Getenv(secretEnvKey)
	if secretKey == "" {
		return nil, errors.New("session secret not configured")
	}

	token, err := jwt.Parse(sessionToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	return token, nil
}

// Parse verifies a raw session token outside of a request context.
func Parse(sessionToken string, secretEnvKey string) (jwt.MapClaims, error) {
	secretKey := os.Getenv(secretEnvKey)
	if secretKey == "" {
		return nil, errors.New("session secret not configured")
	}

	token, err := jwt.Parse(sessionToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token claims")
	}

	return claims, nil
}

// GetSessionUser returns the identity the session middleware attached, or the
// anonymous sentinel when the request carries no valid session.
func GetSessionUser(c *fiber.Ctx) entity.SessionUser {
	userData := c.Locals("user")

	user, ok := userData.(entity.SessionUser)
	if !ok {
		return entity.SessionUser{}
	}

	return user
}

// GetSessionID returns the session id bound to the request, if any.
func GetSessionID(c *fiber.Ctx) string {
	sid, ok := c.Locals("session_id").(string)
	if !ok {
		return ""
	}
	return sid
}
