package services

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"itask.com/itask/internal/constants"
	model "itask.com/itask/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Utilizador{},
		&model.Gestor{},
		&model.Programador{},
		&model.TipoTarefa{},
		&model.Tarefa{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func seedGestor(t *testing.T, db *gorm.DB, username string) *model.Account {
	t.Helper()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.MinCost)
	user := model.Utilizador{Nome: "Gestor " + username, Username: username, Password: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed gestor user: %v", err)
	}
	if err := db.Create(&model.Gestor{Id: user.Id, Departamento: "IT"}).Error; err != nil {
		t.Fatalf("failed to seed gestor role: %v", err)
	}

	return &model.Account{
		Id:           user.Id,
		Nome:         user.Nome,
		Username:     user.Username,
		Papel:        constants.PapelGestor,
		Departamento: "IT",
	}
}

func seedProgramador(t *testing.T, db *gorm.DB, username string, gestorID uint) *model.Account {
	t.Helper()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.MinCost)
	user := model.Utilizador{Nome: "Programador " + username, Username: username, Password: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed programador user: %v", err)
	}
	prog := model.Programador{Id: user.Id, NivelExperiencia: constants.NivelJunior, IdGestor: gestorID}
	if err := db.Create(&prog).Error; err != nil {
		t.Fatalf("failed to seed programador role: %v", err)
	}

	return &model.Account{
		Id:                user.Id,
		Nome:              user.Nome,
		Username:          user.Username,
		Papel:             constants.PapelProgramador,
		NivelExperiencia:  constants.NivelJunior,
		GeridoPorGestorId: gestorID,
	}
}

func seedTipo(t *testing.T, db *gorm.DB, nome string) *model.TipoTarefa {
	t.Helper()

	tipo := model.TipoTarefa{Nome: nome}
	if err := db.Create(&tipo).Error; err != nil {
		t.Fatalf("failed to seed tipo tarefa: %v", err)
	}
	return &tipo
}

func seedTarefa(t *testing.T, db *gorm.DB, gestorID, programadorID, tipoID uint, ordem int, estado constants.Estado) *model.Tarefa {
	t.Helper()

	task := model.Tarefa{
		Descricao:          "Tarefa",
		StoryPoints:        2,
		OrdemExecucao:      ordem,
		DataPrevistaInicio: model.NewDate(2025, time.March, 3),
		DataPrevistaFim:    model.NewDate(2025, time.March, 7),
		EstadoAtual:        estado,
		IdTipoTarefa:       tipoID,
		IdProgramador:      programadorID,
		IdGestor:           gestorID,
		Version:            1,
	}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("failed to seed tarefa: %v", err)
	}
	return &task
}

func reloadTarefa(t *testing.T, db *gorm.DB, id uint) *model.Tarefa {
	t.Helper()

	var task model.Tarefa
	if err := db.First(&task, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to reload tarefa %d: %v", id, err)
	}
	return &task
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

var testCtx = context.Background()
