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

// LifecycleService decides whether a board transition is admissible and
// applies it, stamping the real start/end dates as a side effect. It is the
// only writer of EstadoAtual, DataRealInicio and DataRealFim.
type LifecycleService struct {
	db         *gorm.DB
	wipLimit   int
	restricted bool
	today      func() model.Date
}

// NewLifecycleService configures the engine. wipLimit caps a programmer's
// simultaneous Doing tasks; restricted limits transitions to the assignee or
// the owning manager instead of any authenticated user.
func NewLifecycleService(db *gorm.DB, wipLimit int, restricted bool) *LifecycleService {
	return &LifecycleService{
		db:         db,
		wipLimit:   wipLimit,
		restricted: restricted,
		today:      model.Today,
	}
}

// Transition validates and applies a state change. Guard evaluation and the
// write run inside one transaction, with a version compare-and-swap on the
// final update, so concurrent requests cannot race past the WIP or ordering
// checks.
func (s *LifecycleService) Transition(ctx context.Context, taskID uint, novoEstado constants.Estado, actor *model.Account) (*model.Tarefa, error) {
	if !novoEstado.Valid() {
		return nil, apperrors.ErrEstadoInvalido
	}

	var updated *model.Tarefa

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.NewTaskRepository(tx)

		task, err := repo.FindByID(ctx, taskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTarefaNaoEncontrada
			}
			return err
		}

		if s.restricted && actor != nil && actor.Id != task.IdProgramador && actor.Id != task.IdGestor {
			return apperrors.ErrTarefaDeOutro
		}

		// Completed tasks are frozen; re-affirming Done is the one exception.
		if task.EstadoAtual == constants.EstadoDone && novoEstado != constants.EstadoDone {
			return apperrors.ErrTarefaImutavel
		}

		if novoEstado == constants.EstadoDoing {
			if err := s.admitDoing(ctx, repo, task); err != nil {
				return err
			}
		}

		s.applyDates(task, novoEstado)
		task.EstadoAtual = novoEstado

		if err := repo.UpdateEstado(ctx, task); err != nil {
			if errors.Is(err, repository.ErrOptimisticLock) {
				return apperrors.ErrConflitoConcorrencia
			}
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// admitDoing enforces the WIP limit and the strict in-order execution rule.
func (s *LifecycleService) admitDoing(ctx context.Context, repo *repository.TaskRepository, task *model.Tarefa) error {
	doing, err := repo.CountDoingExcluding(ctx, task.IdProgramador, task.Id)
	if err != nil {
		return err
	}
	if doing >= int64(s.wipLimit) {
		return apperrors.ErrLimiteWip
	}

	ordem, blocked, err := repo.LowestPendingBefore(ctx, task.IdProgramador, task.OrdemExecucao, task.Id)
	if err != nil {
		return err
	}
	if blocked {
		return apperrors.OrdemPendente(ordem)
	}

	return nil
}

func (s *LifecycleService) applyDates(task *model.Tarefa, novoEstado constants.Estado) {
	switch novoEstado {
	case constants.EstadoToDo:
		task.DataRealInicio = nil
		task.DataRealFim = nil
	case constants.EstadoDoing:
		// First entry into Doing stamps the start; re-entry keeps it.
		if task.DataRealInicio == nil {
			hoje := s.today()
			task.DataRealInicio = &hoje
		}
		task.DataRealFim = nil
	case constants.EstadoDone:
		hoje := s.today()
		task.DataRealFim = &hoje
	}
}
