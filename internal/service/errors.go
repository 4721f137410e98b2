package service

import (
	"errors"
	"strings"
)

var (
	// ErrDuplicateAccount is returned when registering an email that already exists.
	ErrDuplicateAccount = errors.New("account already registered")
	// ErrPasswordMismatch indicates password and confirmation differ.
	ErrPasswordMismatch = errors.New("password confirmation does not match")
	// ErrUnknownAccount indicates no user has the given email.
	ErrUnknownAccount = errors.New("account does not exist")
	// ErrInvalidCredentials indicates that the provided password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrRoleNotAllowed is returned when self-registration asks for a privileged role.
	ErrRoleNotAllowed = errors.New("role not allowed")

	// ErrDuplicateArticle is returned when an article title is already taken.
	ErrDuplicateArticle = errors.New("article already exists")
	// ErrArticleNotFound is returned when no article matches the lookup.
	ErrArticleNotFound = errors.New("article not found")
	// ErrForbidden indicates the caller lacks the capability for the operation.
	ErrForbidden = errors.New("forbidden")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// ValidationError collects input rule violations.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
