package errors

import "net/http"

var ErrTarefaImutavel = &Exception{
	Message:    "Tarefas concluídas não podem ser alteradas.",
	StatusCode: http.StatusBadRequest,
}
