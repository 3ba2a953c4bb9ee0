package constants

// Estado is the lifecycle state of a task on the board.
type Estado string

const (
	EstadoToDo  Estado = "ToDo"
	EstadoDoing Estado = "Doing"
	EstadoDone  Estado = "Done"
)

func (e Estado) Valid() bool {
	switch e {
	case EstadoToDo, EstadoDoing, EstadoDone:
		return true
	}
	return false
}

// Papel is the role of a user account.
type Papel string

const (
	PapelGestor      Papel = "Gestor"
	PapelProgramador Papel = "Programador"
)

func (p Papel) Valid() bool {
	return p == PapelGestor || p == PapelProgramador
}

// Nivel is the experience level of a programmer.
type Nivel string

const (
	NivelJunior Nivel = "Junior"
	NivelSenior Nivel = "Senior"
)

func (n Nivel) Valid() bool {
	return n == NivelJunior || n == NivelSenior
}
