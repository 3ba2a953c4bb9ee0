package errors

import "net/http"

var ErrTarefaNaoConcluida = &Exception{
	Message:    "Apenas tarefas concluídas podem ser eliminadas.",
	StatusCode: http.StatusBadRequest,
}
