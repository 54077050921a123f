package errors

import "net/http"

var ErrInvalidListReference = &Exception{
	Kind:       KindReference,
	Message:    "The selected list id is invalid.",
	StatusCode: http.StatusUnprocessableEntity,
	Fields:     map[string]string{"list_id": "The selected list id is invalid."},
}
