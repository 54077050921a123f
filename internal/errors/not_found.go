package errors

import "net/http"

var ErrListNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "list not found",
	StatusCode: http.StatusNotFound,
}

var ErrTaskNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}

var ErrUserNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "user not found",
	StatusCode: http.StatusNotFound,
}
