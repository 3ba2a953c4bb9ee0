package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"itask.com/itask/internal/constants"
	apperrors "itask.com/itask/internal/errors"
	model "itask.com/itask/internal/models"
	repository "itask.com/itask/internal/repositories"
)

type TaskService struct {
	db   *gorm.DB
	repo *repository.TaskRepository
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{
		db:   db,
		repo: repository.NewTaskRepository(db),
	}
}

// TaskInput carries the fields a manager sets when creating or editing a
// task. The real dates are optional overrides for backfilling history.
type TaskInput struct {
	Descricao          string
	StoryPoints        int
	OrdemExecucao      int
	DataPrevistaInicio model.Date
	DataPrevistaFim    model.Date
	IdTipoTarefa       uint
	IdProgramador      uint
	DataRealInicio     *model.Date
	DataRealFim        *model.Date
}

// Create validates the (programador, ordem) uniqueness inside the insert
// transaction and initializes the task in ToDo.
func (s *TaskService) Create(ctx context.Context, input TaskInput, gestor *model.Account) (*model.Tarefa, error) {
	task := &model.Tarefa{
		Descricao:          input.Descricao,
		StoryPoints:        input.StoryPoints,
		OrdemExecucao:      input.OrdemExecucao,
		DataPrevistaInicio: input.DataPrevistaInicio,
		DataPrevistaFim:    input.DataPrevistaFim,
		DataRealInicio:     input.DataRealInicio,
		DataRealFim:        input.DataRealFim,
		EstadoAtual:        constants.EstadoToDo,
		IdTipoTarefa:       input.IdTipoTarefa,
		IdProgramador:      input.IdProgramador,
		IdGestor:           gestor.Id,
		Version:            1,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.NewTaskRepository(tx)

		exists, err := repo.ExistsOrdem(ctx, input.IdProgramador, input.OrdemExecucao)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.OrdemDuplicada(input.OrdemExecucao)
		}

		return repo.Create(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Get(ctx context.Context, id uint) (*model.TarefaDetalhe, error) {
	task, err := s.repo.FindDetalhe(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTarefaNaoEncontrada
		}
		return nil, err
	}
	return task, nil
}

// List returns the board the caller is allowed to see: a manager's own, or
// for a developer the board of their managing manager.
func (s *TaskService) List(ctx context.Context, actor *model.Account) ([]model.TarefaDetalhe, error) {
	return s.repo.ListByGestor(ctx, actor.GestorId())
}

// UpdateDescritivo edits the descriptive fields of a task owned by the
// caller. Completed tasks are frozen against edits as well.
func (s *TaskService) UpdateDescritivo(ctx context.Context, id uint, input TaskInput, gestor *model.Account) (*model.Tarefa, error) {
	task, err := s.findOwned(ctx, id, gestor)
	if err != nil {
		return nil, err
	}

	if task.EstadoAtual == constants.EstadoDone {
		return nil, apperrors.ErrTarefaImutavel
	}

	task.Descricao = input.Descricao
	task.StoryPoints = input.StoryPoints
	task.DataPrevistaInicio = input.DataPrevistaInicio
	task.DataPrevistaFim = input.DataPrevistaFim
	task.IdTipoTarefa = input.IdTipoTarefa

	if err := s.repo.UpdateDescritivo(ctx, task); err != nil {
		if errors.Is(err, repository.ErrOptimisticLock) {
			return nil, apperrors.ErrConflitoConcorrencia
		}
		return nil, err
	}

	return task, nil
}

// Delete removes a task permanently; only completed tasks may go.
func (s *TaskService) Delete(ctx context.Context, id uint, gestor *model.Account) error {
	task, err := s.findOwned(ctx, id, gestor)
	if err != nil {
		return err
	}

	if task.EstadoAtual != constants.EstadoDone {
		return apperrors.ErrTarefaNaoConcluida
	}

	return s.repo.Delete(ctx, id)
}

func (s *TaskService) findOwned(ctx context.Context, id uint, gestor *model.Account) (*model.Tarefa, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTarefaNaoEncontrada
		}
		return nil, err
	}

	if task.IdGestor != gestor.Id {
		return nil, apperrors.ErrTarefaDeOutro
	}

	return task, nil
}
