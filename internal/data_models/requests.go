package dto

import (
	model "itask.com/itask/internal/models"
)

// Field names mirror the legacy API payloads and must not change.

type RegisterRequest struct {
	Nome             string `json:"Nome"`
	Username         string `json:"Username"`
	Password         string `json:"Password"`
	Papel            string `json:"Papel"`
	Departamento     string `json:"Departamento"`
	NivelExperiencia string `json:"NivelExperiencia"`
}

type LoginRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

type TaskRequest struct {
	Descricao          string      `json:"Descricao"`
	StoryPoints        int         `json:"StoryPoints"`
	OrdemExecucao      int         `json:"OrdemExecucao"`
	DataPrevistaInicio model.Date  `json:"DataPrevistaInicio"`
	DataPrevistaFim    model.Date  `json:"DataPrevistaFim"`
	IdTipoTarefa       uint        `json:"IdTipoTarefa"`
	IdProgramador      uint        `json:"IdProgramador"`
	DataRealInicio     *model.Date `json:"DataRealInicio"`
	DataRealFim        *model.Date `json:"DataRealFim"`
}

type EstadoRequest struct {
	NovoEstado string `json:"novoEstado"`
}

type TipoTarefaRequest struct {
	Nome string `json:"Nome"`
}

type ProgramadorRequest struct {
	Nome             string `json:"Nome"`
	NivelExperiencia string `json:"NivelExperiencia"`
}
