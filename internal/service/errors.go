package service

import "errors"

// Common service errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
)

// Stats service specific errors
var (
	ErrPlayerNotFound = errors.New("player not found")
)
