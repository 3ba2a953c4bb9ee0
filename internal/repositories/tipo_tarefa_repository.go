package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "itask.com/itask/internal/errors"
	model "itask.com/itask/internal/models"
)

type TipoTarefaRepository struct {
	db *gorm.DB
}

func NewTipoTarefaRepository(db *gorm.DB) *TipoTarefaRepository {
	return &TipoTarefaRepository{db: db}
}

func (r *TipoTarefaRepository) List(ctx context.Context) ([]model.TipoTarefa, error) {
	var tipos []model.TipoTarefa
	err := r.db.WithContext(ctx).Order("nome asc").Find(&tipos).Error
	return tipos, err
}

func (r *TipoTarefaRepository) FindByID(ctx context.Context, id uint) (*model.TipoTarefa, error) {
	var tipo model.TipoTarefa
	err := r.db.WithContext(ctx).First(&tipo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTipoNaoEncontrado
		}
		return nil, err
	}
	return &tipo, nil
}

func (r *TipoTarefaRepository) Create(ctx context.Context, nome string) (*model.TipoTarefa, error) {
	tipo := &model.TipoTarefa{Nome: nome}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.TipoTarefa{}).Where("nome = ?", nome).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrTipoDuplicado
		}
		return tx.Create(tipo).Error
	})
	if err != nil {
		return nil, err
	}

	return tipo, nil
}

func (r *TipoTarefaRepository) Update(ctx context.Context, id uint, nome string) (*model.TipoTarefa, error) {
	var tipo *model.TipoTarefa

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := NewTipoTarefaRepository(tx).FindByID(ctx, id)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.TipoTarefa{}).
			Where("nome = ? AND id <> ?", nome, id).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrTipoDuplicado
		}

		found.Nome = nome
		tipo = found
		return tx.Model(&model.TipoTarefa{}).Where("id = ?", id).Update("nome", nome).Error
	})
	if err != nil {
		return nil, err
	}

	return tipo, nil
}

// Delete removes a type only while no task references it.
func (r *TipoTarefaRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := NewTipoTarefaRepository(tx).FindByID(ctx, id); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Tarefa{}).
			Where("id_tipo_tarefa = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrTipoReferenciado
		}

		return tx.Delete(&model.TipoTarefa{}, "id = ?", id).Error
	})
}
