// Package domain holds the self-validating value objects and the error
// taxonomy shared by every use case in the application
package domain

import (
	"errors"
	"net/http"
)

// Error kinds. Every domain error carries one of these so callers can
// distinguish failures without string matching.
const (
	KindValidation         = "validation"
	KindNotFound           = "not_found"
	KindForbidden          = "forbidden"
	KindAlreadyExists      = "already_exists"
	KindOperationFailed    = "operation_failed"
	KindInvalidSession     = "invalid_session"
	KindInvalidCredentials = "invalid_credentials"
	KindInvalidToken       = "invalid_token"
	KindAlreadyVerified    = "already_verified"
)

// Error is raised at the point of detection and travels unchanged up to
// the handler boundary, which is the only place that turns it into a
// transport response.
type Error struct {
	Kind    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: msg}
}

func NewNotFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: msg}
}

func NewForbiddenError(msg string) *Error {
	return &Error{Kind: KindForbidden, Status: http.StatusForbidden, Message: msg}
}

func NewAlreadyExistsError(msg string) *Error {
	return &Error{Kind: KindAlreadyExists, Status: http.StatusConflict, Message: msg}
}

func NewOperationFailedError(msg string) *Error {
	return &Error{Kind: KindOperationFailed, Status: http.StatusInternalServerError, Message: msg}
}

func NewInvalidSessionError() *Error {
	return &Error{Kind: KindInvalidSession, Status: http.StatusUnauthorized, Message: "Session invalid or expired"}
}

func NewInvalidCredentialsError() *Error {
	return &Error{Kind: KindInvalidCredentials, Status: http.StatusUnauthorized, Message: "Invalid credentials"}
}

func NewInvalidTokenError() *Error {
	return &Error{Kind: KindInvalidToken, Status: http.StatusUnauthorized, Message: "Token invalid or expired"}
}

func NewAlreadyVerifiedError() *Error {
	return &Error{Kind: KindAlreadyVerified, Status: http.StatusConflict, Message: "Account is already verified"}
}

// AsError unwraps err into a domain error if it is one
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsKind reports whether err is a domain error of the given kind
func IsKind(err error, kind string) bool {
	de, ok := AsError(err)
	return ok && de.Kind == kind
}
