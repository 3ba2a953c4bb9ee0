package errors

import "net/http"

var ErrLimiteWip = &Exception{
	Message:    "O programador já atingiu o limite de tarefas em curso.",
	StatusCode: http.StatusConflict,
}
