package authService

import (
	"time"

	"blogserver/internal/api/auth"
	"blogserver/internal/entity"
	jwtPkg "blogserver/pkg/jwt"
	"blogserver/pkg/redis"

	"github.com/google/uuid"
	"golang.org/x/net/context"
)

func MakeSessionClaims(sessionID string, user entity.User) map[string]interface{} {
	return map[string]interface{}{
		"sid":   sessionID,
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.Role),
	}
}

// establishSession writes the session record and signs the session token that
// binds subsequent requests to the identity.
func establishSession(ctx context.Context, redisServer redis.IRedis, user entity.User) (auth.SessionResponse, error) {
	sessionID := uuid.NewString()

	if err := redisServer.SetSession(ctx, sessionID, user.ID, SessionTTL); err != nil {
		return auth.SessionResponse{}, err
	}

	token, expiredAt, err := jwtPkg.Sign(MakeSessionClaims(sessionID, user), SessionTTL)
	if err != nil {
		return auth.SessionResponse{}, err
	}

	return auth.SessionResponse{
		SessionID:    sessionID,
		SessionToken: token,
		ExpiresAt:    time.Unix(expiredAt, 0),
	}, nil
}
