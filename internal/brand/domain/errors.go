package domain

import "errors"

var (
	ErrNotFound    = errors.New("project not found")
	ErrDuplicateID = errors.New("project id already registered")
	ErrValidation  = errors.New("invalid form data")
)
