package errors

import "net/http"

var ErrTipoReferenciado = &Exception{
	Message:    "O tipo de tarefa está associado a tarefas existentes.",
	StatusCode: http.StatusConflict,
}

var ErrTipoNaoEncontrado = &Exception{
	Message:    "Tipo de tarefa não encontrado.",
	StatusCode: http.StatusNotFound,
}

var ErrTipoDuplicado = &Exception{
	Message:    "Já existe um tipo de tarefa com esse nome.",
	StatusCode: http.StatusConflict,
}
