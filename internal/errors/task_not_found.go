package errors

import "net/http"

var ErrTarefaNaoEncontrada = &Exception{
	Message:    "Tarefa não encontrada.",
	StatusCode: http.StatusNotFound,
}
