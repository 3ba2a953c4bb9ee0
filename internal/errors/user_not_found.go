package errors

import "net/http"

var ErrUtilizadorNaoExistente = &Exception{
	Message:    "Utilizador não existente.",
	StatusCode: http.StatusNotFound,
}

var ErrProgramadorNaoEncontrado = &Exception{
	Message:    "Programador não encontrado.",
	StatusCode: http.StatusNotFound,
}
