package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"itask.com/itask/internal/constants"
	model "itask.com/itask/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

var ErrOptimisticLock = errors.New("optimistic locking conflict")

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Tarefa) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Tarefa, error) {
	var task model.Tarefa
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ExistsOrdem(ctx context.Context, programadorID uint, ordem int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Tarefa{}).
		Where("id_programador = ? AND ordem_execucao = ?", programadorID, ordem).
		Count(&count).Error
	return count > 0, err
}

// CountDoingExcluding counts the programmer's tasks currently in Doing,
// leaving out the task under evaluation.
func (r *TaskRepository) CountDoingExcluding(ctx context.Context, programadorID, excludeID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Tarefa{}).
		Where("id_programador = ? AND estado_atual = ? AND id <> ?",
			programadorID, constants.EstadoDoing, excludeID).
		Count(&count).Error
	return count, err
}

// LowestPendingBefore returns the smallest execution order below ordem that
// the programmer has not yet completed. The second return reports whether
// such a blocking task exists.
func (r *TaskRepository) LowestPendingBefore(ctx context.Context, programadorID uint, ordem int, excludeID uint) (int, bool, error) {
	var ordens []int
	err := r.db.WithContext(ctx).Model(&model.Tarefa{}).
		Where("id_programador = ? AND ordem_execucao < ? AND estado_atual <> ? AND id <> ?",
			programadorID, ordem, constants.EstadoDone, excludeID).
		Order("ordem_execucao asc").
		Limit(1).
		Pluck("ordem_execucao", &ordens).Error
	if err != nil {
		return 0, false, err
	}
	if len(ordens) == 0 {
		return 0, false, nil
	}
	return ordens[0], true, nil
}

// UpdateEstado writes the state and real dates behind a version check, the
// compare-and-swap that keeps concurrent transitions from racing past the
// guards.
func (r *TaskRepository) UpdateEstado(ctx context.Context, task *model.Tarefa) error {
	res := r.db.WithContext(ctx).Model(&model.Tarefa{}).
		Where("id = ? AND version = ?", task.Id, task.Version).
		Updates(map[string]interface{}{
			"estado_atual":     task.EstadoAtual,
			"data_real_inicio": task.DataRealInicio,
			"data_real_fim":    task.DataRealFim,
			"version":          gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOptimisticLock
	}

	task.Version++
	return nil
}

// UpdateDescritivo rewrites the descriptive fields, leaving state, ordering
// and the real dates untouched.
func (r *TaskRepository) UpdateDescritivo(ctx context.Context, task *model.Tarefa) error {
	res := r.db.WithContext(ctx).Model(&model.Tarefa{}).
		Where("id = ? AND version = ?", task.Id, task.Version).
		Updates(map[string]interface{}{
			"descricao":            task.Descricao,
			"story_points":         task.StoryPoints,
			"data_prevista_inicio": task.DataPrevistaInicio,
			"data_prevista_fim":    task.DataPrevistaFim,
			"id_tipo_tarefa":       task.IdTipoTarefa,
			"version":              gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOptimisticLock
	}

	task.Version++
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Tarefa{}, "id = ?", id).Error
}

func (r *TaskRepository) detalheQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Tarefa{}).
		Select("Tarefa.*, up.nome AS nome_programador, ug.nome AS nome_gestor, tt.nome AS tipo").
		Joins("LEFT JOIN Utilizador up ON up.id = Tarefa.id_programador").
		Joins("LEFT JOIN Utilizador ug ON ug.id = Tarefa.id_gestor").
		Joins("LEFT JOIN TipoTarefa tt ON tt.id = Tarefa.id_tipo_tarefa")
}

func (r *TaskRepository) FindDetalhe(ctx context.Context, id uint) (*model.TarefaDetalhe, error) {
	var task model.TarefaDetalhe
	err := r.detalheQuery(ctx).Where("Tarefa.id = ?", id).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByGestor returns a manager's board ordered by execution rank.
func (r *TaskRepository) ListByGestor(ctx context.Context, gestorID uint) ([]model.TarefaDetalhe, error) {
	var tasks []model.TarefaDetalhe
	err := r.detalheQuery(ctx).
		Where("Tarefa.id_gestor = ?", gestorID).
		Order("Tarefa.ordem_execucao asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListConcluidasByGestor(ctx context.Context, gestorID uint) ([]model.TarefaDetalhe, error) {
	var tasks []model.TarefaDetalhe
	err := r.detalheQuery(ctx).
		Where("Tarefa.id_gestor = ? AND Tarefa.estado_atual = ?", gestorID, constants.EstadoDone).
		Order("Tarefa.data_real_fim desc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListConcluidasByProgramador(ctx context.Context, programadorID uint) ([]model.TarefaDetalhe, error) {
	var tasks []model.TarefaDetalhe
	err := r.detalheQuery(ctx).
		Where("Tarefa.id_programador = ? AND Tarefa.estado_atual = ?", programadorID, constants.EstadoDone).
		Order("Tarefa.data_real_fim desc").
		Find(&tasks).Error
	return tasks, err
}

// ListPendentesByGestor returns a manager's not-yet-completed tasks.
func (r *TaskRepository) ListPendentesByGestor(ctx context.Context, gestorID uint) ([]model.TarefaDetalhe, error) {
	var tasks []model.TarefaDetalhe
	err := r.detalheQuery(ctx).
		Where("Tarefa.id_gestor = ? AND Tarefa.estado_atual <> ?", gestorID, constants.EstadoDone).
		Order("Tarefa.ordem_execucao asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListToDoByGestor(ctx context.Context, gestorID uint) ([]model.TarefaDetalhe, error) {
	var tasks []model.TarefaDetalhe
	err := r.detalheQuery(ctx).
		Where("Tarefa.id_gestor = ? AND Tarefa.estado_atual = ?", gestorID, constants.EstadoToDo).
		Order("Tarefa.ordem_execucao asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) CountByTipo(ctx context.Context, tipoID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Tarefa{}).
		Where("id_tipo_tarefa = ?", tipoID).
		Count(&count).Error
	return count, err
}

func (r *TaskRepository) DeleteByProgramador(ctx context.Context, programadorID uint) error {
	return r.db.WithContext(ctx).
		Where("id_programador = ?", programadorID).
		Delete(&model.Tarefa{}).Error
}
