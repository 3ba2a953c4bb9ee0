package errors

import (
	"fmt"
	"net/http"
)

func CampoObrigatorio(campo string) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("O campo %s é obrigatório.", campo),
		StatusCode: http.StatusBadRequest,
	}
}

func ValorInvalido(campo string) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("O campo %s tem um valor inválido.", campo),
		StatusCode: http.StatusBadRequest,
	}
}
