package errors

import "net/http"

var ErrEstadoInvalido = &Exception{
	Message:    "Estado inválido.",
	StatusCode: http.StatusBadRequest,
}
