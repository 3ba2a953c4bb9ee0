package services

import (
	"context"

	"itask.com/itask/internal/constants"
	apperrors "itask.com/itask/internal/errors"
	model "itask.com/itask/internal/models"
	repository "itask.com/itask/internal/repositories"
)

type TeamService struct {
	users *repository.UserRepository
}

func NewTeamService(users *repository.UserRepository) *TeamService {
	return &TeamService{users: users}
}

func (s *TeamService) ListProgramadores(ctx context.Context, gestor *model.Account) ([]model.ProgramadorInfo, error) {
	return s.users.ListProgramadores(ctx, gestor.Id)
}

func (s *TeamService) UpdateProgramador(ctx context.Context, id uint, nome string, nivel constants.Nivel, gestor *model.Account) error {
	if nome == "" {
		return apperrors.CampoObrigatorio("Nome")
	}
	if !nivel.Valid() {
		return apperrors.ValorInvalido("NivelExperiencia")
	}
	return s.users.UpdateProgramador(ctx, id, gestor.Id, nome, nivel)
}

// DeleteProgramador removes a developer and cascades to their tasks.
func (s *TeamService) DeleteProgramador(ctx context.Context, id uint, gestor *model.Account) error {
	return s.users.DeleteProgramador(ctx, id, gestor.Id)
}
