package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"itask.com/itask/internal/constants"
	apperrors "itask.com/itask/internal/errors"
	model "itask.com/itask/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func usernameTaken(tx *gorm.DB, username string) (bool, error) {
	var count int64
	err := tx.Model(&model.Utilizador{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.Utilizador, error) {
	var user model.Utilizador
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ResolveAccount attaches the role attributes to a base user, mirroring the
// legacy outer-join role resolution but with an explicit role tag.
func (r *UserRepository) ResolveAccount(ctx context.Context, user *model.Utilizador) (*model.Account, error) {
	account := &model.Account{
		Id:       user.Id,
		Nome:     user.Nome,
		Username: user.Username,
	}

	var gestor model.Gestor
	err := r.db.WithContext(ctx).First(&gestor, "id = ?", user.Id).Error
	if err == nil {
		account.Papel = constants.PapelGestor
		account.Departamento = gestor.Departamento
		account.GereUtilizadores = gestor.GereUtilizadores
		return account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var programador model.Programador
	err = r.db.WithContext(ctx).First(&programador, "id = ?", user.Id).Error
	if err == nil {
		account.Papel = constants.PapelProgramador
		account.NivelExperiencia = programador.NivelExperiencia
		account.GeridoPorGestorId = programador.IdGestor
		return account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// User row without a role row; leave Papel empty.
	return account, nil
}

// CreateGestor writes the base user and the manager row in one transaction.
func (r *UserRepository) CreateGestor(ctx context.Context, nome, username, passwordHash, departamento string) (*model.Account, error) {
	var account *model.Account

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := usernameTaken(tx, username)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrUsernameDuplicado
		}

		user := model.Utilizador{Nome: nome, Username: username, Password: passwordHash}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		gestor := model.Gestor{Id: user.Id, Departamento: departamento}
		if err := tx.Create(&gestor).Error; err != nil {
			return err
		}

		account = &model.Account{
			Id:           user.Id,
			Nome:         user.Nome,
			Username:     user.Username,
			Papel:        constants.PapelGestor,
			Departamento: departamento,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// CreateProgramador writes the base user, the developer row and the manager's
// counter bump in one transaction; any failure rolls the whole unit back.
func (r *UserRepository) CreateProgramador(ctx context.Context, nome, username, passwordHash string, nivel constants.Nivel, gestorID uint) (*model.Account, error) {
	var account *model.Account

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := usernameTaken(tx, username)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrUsernameDuplicado
		}

		user := model.Utilizador{Nome: nome, Username: username, Password: passwordHash}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		programador := model.Programador{Id: user.Id, NivelExperiencia: nivel, IdGestor: gestorID}
		if err := tx.Create(&programador).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Gestor{}).
			Where("id = ?", gestorID).
			UpdateColumn("gere_utilizadores", gorm.Expr("gere_utilizadores + 1")).Error; err != nil {
			return err
		}

		account = &model.Account{
			Id:                user.Id,
			Nome:              user.Nome,
			Username:          user.Username,
			Papel:             constants.PapelProgramador,
			NivelExperiencia:  nivel,
			GeridoPorGestorId: gestorID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (r *UserRepository) ListProgramadores(ctx context.Context, gestorID uint) ([]model.ProgramadorInfo, error) {
	var programadores []model.ProgramadorInfo
	err := r.db.WithContext(ctx).Model(&model.Programador{}).
		Select("Programador.id, u.nome, u.username, Programador.nivel_experiencia").
		Joins("JOIN Utilizador u ON u.id = Programador.id").
		Where("Programador.id_gestor = ?", gestorID).
		Order("u.nome asc").
		Find(&programadores).Error
	return programadores, err
}

func (r *UserRepository) findManaged(tx *gorm.DB, id, gestorID uint) (*model.Programador, error) {
	var programador model.Programador
	err := tx.Where("id = ? AND id_gestor = ?", id, gestorID).First(&programador).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgramadorNaoEncontrado
		}
		return nil, err
	}
	return &programador, nil
}

// UpdateProgramador edits a managed developer's name and level atomically.
func (r *UserRepository) UpdateProgramador(ctx context.Context, id, gestorID uint, nome string, nivel constants.Nivel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.findManaged(tx, id, gestorID); err != nil {
			return err
		}

		if err := tx.Model(&model.Utilizador{}).
			Where("id = ?", id).
			Update("nome", nome).Error; err != nil {
			return err
		}

		return tx.Model(&model.Programador{}).
			Where("id = ?", id).
			Update("nivel_experiencia", nivel).Error
	})
}

// DeleteProgramador removes a managed developer, their tasks and both user
// rows, and decrements the manager's counter in the same transaction.
func (r *UserRepository) DeleteProgramador(ctx context.Context, id, gestorID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.findManaged(tx, id, gestorID); err != nil {
			return err
		}

		if err := tx.Where("id_programador = ?", id).Delete(&model.Tarefa{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Programador{}, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Utilizador{}, "id = ?", id).Error; err != nil {
			return err
		}

		return tx.Model(&model.Gestor{}).
			Where("id = ?", gestorID).
			UpdateColumn("gere_utilizadores", gorm.Expr("gere_utilizadores - 1")).Error
	})
}
