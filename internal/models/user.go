package model

import (
	"itask.com/itask/internal/constants"
)

// Utilizador is the base identity row shared by both roles.
type Utilizador struct {
	Id       uint   `gorm:"primaryKey" json:"Id"`
	Nome     string `gorm:"not null" json:"Nome"`
	Username string `gorm:"uniqueIndex;not null" json:"Username"`
	Password string `gorm:"not null" json:"-"`
}

func (Utilizador) TableName() string { return "Utilizador" }

// Gestor holds the manager-specific attributes, keyed by the user id.
type Gestor struct {
	Id               uint   `gorm:"primaryKey" json:"Id"`
	Departamento     string `gorm:"not null" json:"Departamento"`
	GereUtilizadores int    `gorm:"not null;default:0" json:"GereUtilizadores"`
}

func (Gestor) TableName() string { return "Gestor" }

// Programador holds the developer-specific attributes, keyed by the user id.
type Programador struct {
	Id               uint            `gorm:"primaryKey" json:"Id"`
	NivelExperiencia constants.Nivel `gorm:"type:varchar(10);not null" json:"NivelExperiencia"`
	IdGestor         uint            `gorm:"index;not null" json:"IdGestor"`
}

func (Programador) TableName() string { return "Programador" }

// Account is the resolved view of a user with its role attributes flattened,
// as returned by /login and carried inside the session. The Papel tag tells
// which of the role fields are meaningful.
type Account struct {
	Id                uint            `json:"Id"`
	Nome              string          `json:"Nome"`
	Username          string          `json:"Username"`
	Papel             constants.Papel `json:"Papel"`
	Departamento      string          `json:"Departamento,omitempty"`
	GereUtilizadores  int             `json:"GereUtilizadores,omitempty"`
	NivelExperiencia  constants.Nivel `json:"NivelExperiencia,omitempty"`
	GeridoPorGestorId uint            `json:"GeridoPorGestorId,omitempty"`
}

func (a *Account) IsGestor() bool {
	return a != nil && a.Papel == constants.PapelGestor
}

// GestorId resolves the manager whose board the account sees: a manager sees
// their own, a developer sees their managing manager's.
func (a *Account) GestorId() uint {
	if a.Papel == constants.PapelProgramador {
		return a.GeridoPorGestorId
	}
	return a.Id
}

// ProgramadorInfo is the roster row shown on the team management pages.
type ProgramadorInfo struct {
	Id               uint            `json:"Id"`
	Nome             string          `json:"Nome"`
	Username         string          `json:"Username"`
	NivelExperiencia constants.Nivel `json:"NivelExperiencia"`
}
