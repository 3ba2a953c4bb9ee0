package errors

import (
	"fmt"
	"net/http"
)

func OrdemDuplicada(ordem int) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("Já existe uma tarefa com a ordem %d para este programador.", ordem),
		StatusCode: http.StatusConflict,
	}
}
