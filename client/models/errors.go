package models

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidID       = errors.New("invalid id")
	ErrValidation      = errors.New("validation error")
	ErrEmptyComment    = errors.New("comment text is empty")
	ErrFileTooLarge    = errors.New("file size must be less than 10MB")
	ErrBadTransition   = errors.New("status transition not allowed")
	ErrRequestInFlight = errors.New("request already in flight")
)
