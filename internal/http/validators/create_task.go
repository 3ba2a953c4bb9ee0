package validators

import (
	dto "itask.com/itask/internal/data_models"
	apperrors "itask.com/itask/internal/errors"
)

func ValidateTaskRequest(r *dto.TaskRequest) error {
	if r.Descricao == "" {
		return apperrors.CampoObrigatorio("Descricao")
	}
	if r.StoryPoints <= 0 {
		return apperrors.ValorInvalido("StoryPoints")
	}
	if r.OrdemExecucao <= 0 {
		return apperrors.ValorInvalido("OrdemExecucao")
	}
	if r.DataPrevistaInicio.IsZero() {
		return apperrors.CampoObrigatorio("DataPrevistaInicio")
	}
	if r.DataPrevistaFim.IsZero() {
		return apperrors.CampoObrigatorio("DataPrevistaFim")
	}
	if r.DataPrevistaFim.Before(r.DataPrevistaInicio.Time) {
		return apperrors.ValorInvalido("DataPrevistaFim")
	}
	if r.IdProgramador == 0 {
		return apperrors.CampoObrigatorio("IdProgramador")
	}
	if r.IdTipoTarefa == 0 {
		return apperrors.CampoObrigatorio("IdTipoTarefa")
	}
	return nil
}
