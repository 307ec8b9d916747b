package posts

import (
	"net/http"

	"blogserver/pkg/response"
)

var (
	ErrPostNotFound       = response.NewError(http.StatusNotFound, "post not found")
	ErrCommentNotFound    = response.NewError(http.StatusNotFound, "comment not found")
	ErrTitleAlreadyExists = response.NewError(http.StatusConflict, "post title already exists")
	ErrNotAdministrator   = response.NewError(http.StatusForbidden, "administrator privileges required")
	ErrCommentNotOwned    = response.NewError(http.StatusForbidden, "comment does not belong to user")
	ErrNotAuthenticated   = response.NewError(http.StatusUnauthorized, "authentication required")
	ErrCreatePost         = response.NewError(http.StatusInternalServerError, "failed to create post")
	ErrUpdatePost         = response.NewError(http.StatusInternalServerError, "failed to update post")
	ErrDeletePost         = response.NewError(http.StatusInternalServerError, "failed to delete post")
	ErrCreateComment      = response.NewError(http.StatusInternalServerError, "failed to create comment")
	ErrDeleteComment      = response.NewError(http.StatusInternalServerError, "failed to delete comment")
	ErrInvalidFileType    = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFileTooLarge       = response.NewError(http.StatusBadRequest, "file too large")
	ErrFailedToUpload     = response.NewError(http.StatusInternalServerError, "failed to upload file")
	ErrImageRequired      = response.NewError(http.StatusBadRequest, "image url or image file is required")
)
