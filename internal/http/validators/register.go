package validators

import (
	dto "itask.com/itask/internal/data_models"
	apperrors "itask.com/itask/internal/errors"
)

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	if r.Nome == "" {
		return apperrors.CampoObrigatorio("Nome")
	}
	if r.Username == "" {
		return apperrors.CampoObrigatorio("Username")
	}
	if r.Password == "" {
		return apperrors.CampoObrigatorio("Password")
	}
	if r.Papel == "" {
		return apperrors.CampoObrigatorio("Papel")
	}
	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	if r.Username == "" {
		return apperrors.CampoObrigatorio("Username")
	}
	if r.Password == "" {
		return apperrors.CampoObrigatorio("Password")
	}
	return nil
}
