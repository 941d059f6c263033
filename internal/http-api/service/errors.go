package service

import (
	"errors"

	"locallibrary/internal/http-api/repository"
)

var (
	ErrNotFound           = repository.ErrNotFound
	ErrNameInUse          = errors.New("username already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownAuthor      = errors.New("author does not exist")
	ErrUnknownGenre       = errors.New("genre does not exist")
	ErrBookHasCopies      = errors.New("book still has copies")
	ErrInvalidInput       = errors.New("invalid input")
)
