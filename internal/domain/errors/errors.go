package errors

import "errors"

// ValidationError is the single business-rule error kind raised during
// registration. It is distinguished only by its message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrInvalidEmail = &ValidationError{Message: "E-mail inválido"}
	ErrWeakPassword = &ValidationError{Message: "Senha fraca"}
	ErrEmailTaken   = &ValidationError{Message: "E-mail já cadastrado"}
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// IsValidation reports whether err wraps a *ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
