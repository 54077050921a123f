package errors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindReference  Kind = "reference"
)

// Exception is an outcome the caller is allowed to see. Anything else that
// reaches the transport layer is treated as an internal failure.
type Exception struct {
	Kind       Kind
	Message    string
	StatusCode int
	// Fields holds per-field messages for validation failures.
	Fields map[string]string
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

func KindOf(err error) (Kind, bool) {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return "", false
}

func IsValidation(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindValidation
}

func IsNotFound(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindNotFound
}

func IsReference(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindReference
}

// IsUserFacing reports whether err belongs to the taxonomy that is reported
// back to the client as a flash message.
func IsUserFacing(err error) bool {
	_, ok := KindOf(err)
	return ok
}
