package errors

import "net/http"

var ErrUsernameDuplicado = &Exception{
	Message:    "Username já registado.",
	StatusCode: http.StatusConflict,
}
