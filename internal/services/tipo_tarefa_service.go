package services

import (
	"context"

	apperrors "itask.com/itask/internal/errors"
	model "itask.com/itask/internal/models"
	repository "itask.com/itask/internal/repositories"
)

type TipoTarefaService struct {
	repo *repository.TipoTarefaRepository
}

func NewTipoTarefaService(repo *repository.TipoTarefaRepository) *TipoTarefaService {
	return &TipoTarefaService{repo: repo}
}

func (s *TipoTarefaService) List(ctx context.Context) ([]model.TipoTarefa, error) {
	return s.repo.List(ctx)
}

func (s *TipoTarefaService) Create(ctx context.Context, nome string) (*model.TipoTarefa, error) {
	if nome == "" {
		return nil, apperrors.CampoObrigatorio("Nome")
	}
	return s.repo.Create(ctx, nome)
}

func (s *TipoTarefaService) Update(ctx context.Context, id uint, nome string) (*model.TipoTarefa, error) {
	if nome == "" {
		return nil, apperrors.CampoObrigatorio("Nome")
	}
	return s.repo.Update(ctx, id, nome)
}

func (s *TipoTarefaService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
