package errors

import "net/http"

var ErrConflitoConcorrencia = &Exception{
	Message:    "A tarefa foi alterada por outro pedido. Tente novamente.",
	StatusCode: http.StatusConflict,
}
