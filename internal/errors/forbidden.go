package errors

import "net/http"

var ErrAcessoNegado = &Exception{
	Message:    "Acesso negado. Apenas Gestores podem realizar esta operação.",
	StatusCode: http.StatusForbidden,
}

var ErrTarefaDeOutro = &Exception{
	Message:    "Acesso negado. A tarefa não pertence ao utilizador.",
	StatusCode: http.StatusForbidden,
}
