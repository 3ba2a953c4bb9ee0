package model

import (
	"itask.com/itask/internal/constants"
)

// Tarefa is one unit of assignable work on a manager's board.
//
// OrdemExecucao is unique among a programmer's tasks and drives the strict
// in-order execution rule. Version backs the compare-and-swap state update.
type Tarefa struct {
	Id                 uint             `gorm:"primaryKey" json:"Id"`
	Descricao          string           `gorm:"not null" json:"Descricao"`
	StoryPoints        int              `gorm:"not null" json:"StoryPoints"`
	OrdemExecucao      int              `gorm:"not null" json:"OrdemExecucao"`
	DataPrevistaInicio Date             `json:"DataPrevistaInicio"`
	DataPrevistaFim    Date             `json:"DataPrevistaFim"`
	DataRealInicio     *Date            `json:"DataRealInicio"`
	DataRealFim        *Date            `json:"DataRealFim"`
	EstadoAtual        constants.Estado `gorm:"type:varchar(10);not null" json:"EstadoAtual"`
	IdTipoTarefa       uint             `gorm:"index;not null" json:"IdTipoTarefa"`
	IdProgramador      uint             `gorm:"index;not null" json:"IdProgramador"`
	IdGestor           uint             `gorm:"index;not null" json:"IdGestor"`
	Version            uint             `gorm:"not null;default:1" json:"-"`
}

func (Tarefa) TableName() string { return "Tarefa" }

// TarefaDetalhe is a Tarefa joined with the display names the board renders.
type TarefaDetalhe struct {
	Tarefa
	NomeProgramador string `json:"NomeProgramador"`
	NomeGestor      string `json:"NomeGestor"`
	Tipo            string `json:"Tipo"`
}
