package errors

import "net/http"

var ErrNaoAutenticado = &Exception{
	Message:    "Não autenticado. Faça login para continuar.",
	StatusCode: http.StatusUnauthorized,
}
