package errors

import (
	"fmt"
	"net/http"
)

// OrdemPendente reports the lowest-ranked task still blocking execution, so
// the board can tell the user which task to finish first.
func OrdemPendente(ordem int) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("A tarefa de ordem %d ainda não foi concluída.", ordem),
		StatusCode: http.StatusConflict,
	}
}
