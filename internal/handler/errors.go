package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/learn-track/server/internal/domain"
	apperrors "github.com/learn-track/server/pkg/errors"
	"github.com/learn-track/server/pkg/httputil"
)

// handleError 把domain错误映射为带状态码的响应错误
func handleError(c *gin.Context, err error) {
	switch {
	// 404 Not Found
	case errors.Is(err, domain.ErrVideoNotFound):
		httputil.ErrorResponse(c, apperrors.ErrVideoNotFound)
	case errors.Is(err, domain.ErrUserNotFound):
		httputil.ErrorResponse(c, apperrors.ErrUserNotFound)

	// 409 Conflict
	case errors.Is(err, domain.ErrEmailExists):
		httputil.ErrorResponse(c, apperrors.ErrEmailRegistered)

	// 401 Unauthorized
	case errors.Is(err, domain.ErrInvalidCredentials):
		httputil.ErrorResponse(c, apperrors.ErrInvalidCredentials)
	case errors.Is(err, domain.ErrPasswordLoginUnavailable):
		httputil.ErrorResponse(c, apperrors.ErrInvalidCredentials.WithDetails("this account uses Google sign-in"))
	case errors.Is(err, domain.ErrGoogleTokenInvalid):
		httputil.ErrorResponse(c, apperrors.ErrGoogleAuthFailed)

	// 400 Bad Request
	case errors.Is(err, domain.ErrInvalidUserID),
		errors.Is(err, domain.ErrInvalidVideoID),
		errors.Is(err, domain.ErrInvalidTitle),
		errors.Is(err, domain.ErrInvalidWatchTime),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrEmptyUpdate),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, domain.ErrInvalidName):
		httputil.ErrorResponse(c, apperrors.ErrValidationFailed.WithDetails(err.Error()))

	// 403 Forbidden
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrForbidden):
		httputil.ErrorResponse(c, apperrors.ErrForbidden)

	// 带状态码的应用错误直接透传，其余按500处理
	default:
		httputil.ErrorResponse(c, err)
	}
}
