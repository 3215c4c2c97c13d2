// Package apperr carries the typed rejections produced by the store layer.
// Handlers translate them into the response envelope; anything that is not an
// *Error surfaces as a generic 500.
package apperr

import (
	"net/http"
)

type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

// NotFound marks a referenced entity as absent, e.g. "article does not exist".
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Msg: msg}
}

// BadRequest marks a mutation payload with a missing or mistyped field.
func BadRequest() *Error {
	return &Error{Status: http.StatusBadRequest, Msg: "Bad request"}
}

// InvalidID marks a non-numeric identifier in the request path.
func InvalidID() *Error {
	return &Error{Status: http.StatusBadRequest, Msg: "Invalid id"}
}
