package errors

import "net/http"

var ErrCredenciaisInvalidas = &Exception{
	Message:    "Username ou Password incorretos.",
	StatusCode: http.StatusUnauthorized,
}
