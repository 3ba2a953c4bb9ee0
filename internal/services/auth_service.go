package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"itask.com/itask/internal/constants"
	apperrors "itask.com/itask/internal/errors"
	model "itask.com/itask/internal/models"
	repository "itask.com/itask/internal/repositories"
	"itask.com/itask/internal/sessions"
)

const bcryptCost = 10

type AuthService struct {
	users *repository.UserRepository
	store sessions.Store
}

func NewAuthService(users *repository.UserRepository, store sessions.Store) *AuthService {
	return &AuthService{users: users, store: store}
}

type RegisterInput struct {
	Nome             string
	Username         string
	Password         string
	Papel            constants.Papel
	Departamento     string
	NivelExperiencia constants.Nivel
}

// Register creates a user plus its role record. Self-service registration is
// for managers only; developers are provisioned by an authenticated manager
// and linked to them.
func (s *AuthService) Register(ctx context.Context, input RegisterInput, actor *model.Account) (*model.Account, error) {
	if !input.Papel.Valid() {
		return nil, apperrors.ValorInvalido("Papel")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	switch input.Papel {
	case constants.PapelGestor:
		if input.Departamento == "" {
			return nil, apperrors.CampoObrigatorio("Departamento")
		}
		return s.users.CreateGestor(ctx, input.Nome, input.Username, string(hash), input.Departamento)

	case constants.PapelProgramador:
		if actor == nil {
			return nil, apperrors.ErrNaoAutenticado
		}
		if !actor.IsGestor() {
			return nil, apperrors.ErrAcessoNegado
		}
		if input.NivelExperiencia == "" {
			return nil, apperrors.CampoObrigatorio("NivelExperiencia")
		}
		if !input.NivelExperiencia.Valid() {
			return nil, apperrors.ValorInvalido("NivelExperiencia")
		}
		return s.users.CreateProgramador(ctx, input.Nome, input.Username, string(hash), input.NivelExperiencia, actor.Id)
	}

	return nil, apperrors.ValorInvalido("Papel")
}

// Login verifies the credentials and opens a session, returning the resolved
// account and the session token for the cookie.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.Account, string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrUtilizadorNaoExistente
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.ErrCredenciaisInvalidas
	}

	account, err := s.users.ResolveAccount(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.store.Create(ctx, *account)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.store.Destroy(ctx, token)
}
