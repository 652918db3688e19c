package models

import "github.com/pkg/errors"

type ErrKind int

const (
	KindStorage ErrKind = iota
	KindValidation
	KindNotFound
	KindAuth
)

// AppError tags an error message with the kind the controllers map to an HTTP
// status. Anything that is not an AppError is treated as a storage failure.
type AppError struct {
	Kind ErrKind
	Msg  string
}

func (e *AppError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &AppError{Kind: KindValidation, Msg: msg}
}

func NewNotFoundError(msg string) error {
	return &AppError{Kind: KindNotFound, Msg: msg}
}

func NewAuthError(msg string) error {
	return &AppError{Kind: KindAuth, Msg: msg}
}

func KindOf(err error) ErrKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}
