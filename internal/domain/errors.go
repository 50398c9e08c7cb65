package domain

import "errors"

var (
	ErrSourceUnavailable = errors.New("data source unavailable")
	ErrInvalidSortKey    = errors.New("invalid sort key")
	ErrInvalidRange      = errors.New("invalid range")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
)
