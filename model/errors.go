package model

import "github.com/pkg/errors"

// Programmer errors returned by the engine. They are never retryable; match them with errors.Is.
var (
	ErrConstruction     = errors.New("invalid grid dimensions")
	ErrOutOfRange       = errors.New("coordinates out of range")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrBorderCell       = errors.New("border cells are always dead")
)
