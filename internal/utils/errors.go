package utils

import "errors"

var (
	ErrInvalidDate = errors.New("invalid date")

	ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")
	ErrEmptySubject     = errors.New("empty subject error")
)
