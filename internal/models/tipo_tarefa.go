package model

// TipoTarefa is a task category label, managed independently of tasks.
type TipoTarefa struct {
	Id   uint   `gorm:"primaryKey" json:"Id"`
	Nome string `gorm:"uniqueIndex;not null" json:"Nome"`
}

func (TipoTarefa) TableName() string { return "TipoTarefa" }
