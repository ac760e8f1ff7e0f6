package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrValidation         = errors.New("invalid input")
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("conflicts with existing resource")
	ErrNumberGeneration   = errors.New("could not generate a unique invoice number")
	ErrRender             = errors.New("invoice rendering failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrEmailAlreadyExists = errors.New("email already registered")
)
