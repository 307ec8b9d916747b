package authService

import (
	"context"
	"time"

	"blogserver/internal/api/auth"
	authRepository "blogserver/internal/api/auth/repository"
	"blogserver/internal/entity"
	"blogserver/pkg/bcrypt"
	"blogserver/pkg/redis"
	"blogserver/pkg/utils"

	"github.com/sirupsen/logrus"
)

// SessionTTL bounds both the redis session record and the signed cookie.
const SessionTTL = 24 * time.Hour

type AuthService interface {
	User() UserDomain
	Session() SessionDomain
}

type UserDomain interface {
	RegisterUser(c context.Context, req auth.RegisterRequest) (auth.SessionResponse, error)
	GetByEmail(c context.Context, email string) (entity.User, error)
}

type SessionDomain interface {
	Login(c context.Context, req auth.LoginRequest) (auth.SessionResponse, error)
	Logout(c context.Context, sessionID string) error
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	redisServer    redis.IRedis
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils

	userDomain    UserDomain
	sessionDomain SessionDomain
}

func (a *authService) User() UserDomain {
	return a.userDomain
}

func (a *authService) Session() SessionDomain {
	return a.sessionDomain
}

type userDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	redisServer redis.IRedis
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

type sessionDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	redisServer redis.IRedis
	bcryptUtils bcrypt.IBcrypt
}

func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	redisServer redis.IRedis,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	return &authService{
		log:            log,
		authRepository: authRepo,
		redisServer:    redisServer,
		bcryptUtils:    bcryptUtils,
		utils:          utils,

		userDomain:    &userDomainImpl{log: log, repo: authRepo, redisServer: redisServer, bcryptUtils: bcryptUtils, utils: utils},
		sessionDomain: &sessionDomainImpl{log: log, repo: authRepo, redisServer: redisServer, bcryptUtils: bcryptUtils},
	}
}
