package services

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)
