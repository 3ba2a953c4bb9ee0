package services

import (
	"errors"
	"testing"

	"itask.com/itask/internal/constants"
	apperrors "itask.com/itask/internal/errors"
	model "itask.com/itask/internal/models"
	repository "itask.com/itask/internal/repositories"
)

func TestListProgramadores(t *testing.T) {
	db := setupTestDB(t)
	gestor := seedGestor(t, db, "gestor")
	outro := seedGestor(t, db, "outro")
	seedProgramador(t, db, "ana", gestor.Id)
	seedProgramador(t, db, "bruno", gestor.Id)
	seedProgramador(t, db, "carla", outro.Id)

	svc := NewTeamService(repository.NewUserRepository(db))

	equipa, err := svc.ListProgramadores(testCtx, gestor)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(equipa) != 2 {
		t.Fatalf("expected 2 managed programmers, got %d", len(equipa))
	}
	for _, p := range equipa {
		if p.Username == "carla" {
			t.Fatal("roster leaked another manager's programmer")
		}
	}
}

func TestUpdateProgramador(t *testing.T) {
	db := setupTestDB(t)
	gestor := seedGestor(t, db, "gestor")
	dev := seedProgramador(t, db, "ana", gestor.Id)

	svc := NewTeamService(repository.NewUserRepository(db))

	if err := svc.UpdateProgramador(testCtx, dev.Id, "Ana Silva", constants.NivelSenior, gestor); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	var user model.Utilizador
	if err := db.First(&user, "id = ?", dev.Id).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if user.Nome != "Ana Silva" {
		t.Fatalf("expected renamed user, got %q", user.Nome)
	}

	var prog model.Programador
	if err := db.First(&prog, "id = ?", dev.Id).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if prog.NivelExperiencia != constants.NivelSenior {
		t.Fatalf("expected Senior, got %s", prog.NivelExperiencia)
	}
}

func TestUpdateProgramador_NivelInvalido(t *testing.T) {
	db := setupTestDB(t)
	gestor := seedGestor(t, db, "gestor")
	dev := seedProgramador(t, db, "ana", gestor.Id)

	svc := NewTeamService(repository.NewUserRepository(db))

	err := svc.UpdateProgramador(testCtx, dev.Id, "Ana", constants.Nivel("Pleno"), gestor)
	var appErr *apperrors.Exception
	if !errors.As(err, &appErr) || appErr.StatusCode != 400 {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateProgramador_DeOutroGestor(t *testing.T) {
	db := setupTestDB(t)
	gestor := seedGestor(t, db, "gestor")
	outro := seedGestor(t, db, "outro")
	dev := seedProgramador(t, db, "ana", gestor.Id)

	svc := NewTeamService(repository.NewUserRepository(db))

	err := svc.UpdateProgramador(testCtx, dev.Id, "Ana", constants.NivelSenior, outro)
	if !errors.Is(err, apperrors.ErrProgramadorNaoEncontrado) {
		t.Fatalf("expected ErrProgramadorNaoEncontrado for foreign manager, got %v", err)
	}
}

// Deleting a programmer removes their tasks and both user rows and decrements
// the manager's counter, all in one unit.
func TestDeleteProgramador_Cascata(t *testing.T) {
	db := setupTestDB(t)
	users := repository.NewUserRepository(db)
	svc := NewTeamService(users)
	auth := NewAuthService(users, nil)

	gestor, err := auth.Register(testCtx, RegisterInput{
		Nome: "Maria", Username: "maria", Password: "Password1!",
		Papel: constants.PapelGestor, Departamento: "IT",
	}, nil)
	if err != nil {
		t.Fatalf("gestor registration failed: %v", err)
	}
	dev, err := auth.Register(testCtx, RegisterInput{
		Nome: "João", Username: "joao", Password: "Password1!",
		Papel: constants.PapelProgramador, NivelExperiencia: constants.NivelJunior,
	}, gestor)
	if err != nil {
		t.Fatalf("programador registration failed: %v", err)
	}

	tipo := seedTipo(t, db, "Bug")
	seedTarefa(t, db, gestor.Id, dev.Id, tipo.Id, 1, constants.EstadoToDo)
	seedTarefa(t, db, gestor.Id, dev.Id, tipo.Id, 2, constants.EstadoDone)

	if err := svc.DeleteProgramador(testCtx, dev.Id, gestor); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if got := countRows(t, db, &model.Tarefa{}); got != 0 {
		t.Fatalf("expected cascaded task deletion, %d tasks remain", got)
	}
	if got := countRows(t, db, &model.Programador{}); got != 0 {
		t.Fatalf("expected programador row removed, %d remain", got)
	}

	user, _ := users.FindByUsername(testCtx, "maria")
	account, _ := users.ResolveAccount(testCtx, user)
	if account.GereUtilizadores != 0 {
		t.Fatalf("expected managed count back to 0, got %d", account.GereUtilizadores)
	}
}
