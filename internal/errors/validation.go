package errors

import "net/http"

// NewValidation builds a validation exception. The first message in order
// becomes the exception message.
func NewValidation(fields map[string]string, order []string) *Exception {
	message := "The given data was invalid."
	for _, field := range order {
		if msg, ok := fields[field]; ok {
			message = msg
			break
		}
	}

	return &Exception{
		Kind:       KindValidation,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
		Fields:     fields,
	}
}

var ErrInvalidPayload = &Exception{
	Kind:       KindValidation,
	Message:    "invalid request payload",
	StatusCode: http.StatusBadRequest,
}
