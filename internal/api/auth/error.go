package auth

import (
	"net/http"

	"blogserver/pkg/response"
)

var (
	ErrEmailAlreadyRegistered = response.NewError(http.StatusConflict, "email already registered")
	ErrEmailNotRegistered     = response.NewError(http.StatusBadRequest, "email not registered")
	ErrPasswordIncorrect      = response.NewError(http.StatusBadRequest, "password incorrect")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrCreateUser             = response.NewError(http.StatusInternalServerError, "failed to create user")
)
