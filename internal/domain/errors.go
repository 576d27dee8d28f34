package domain

import "errors"

var (
	// 通用错误
	ErrInvalidUserID  = errors.New("invalid user id")
	ErrInvalidVideoID = errors.New("invalid video id")
	ErrInvalidTitle   = errors.New("invalid title")

	// 观看记录相关错误
	ErrVideoNotFound    = errors.New("video not found")
	ErrInvalidWatchTime = errors.New("invalid watch time")
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrInvalidRating    = errors.New("invalid rating")
	ErrEmptyUpdate      = errors.New("empty update")

	// 用户相关错误
	ErrUserNotFound             = errors.New("user not found")
	ErrEmailExists              = errors.New("email already exists")
	ErrInvalidEmail             = errors.New("invalid email")
	ErrInvalidPassword          = errors.New("invalid password")
	ErrInvalidName              = errors.New("invalid name")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrPasswordLoginUnavailable = errors.New("password login unavailable for this account")
	ErrGoogleTokenInvalid       = errors.New("invalid google id token")

	// 权限相关错误
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
