package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"math"
	"strconv"

	model "itask.com/itask/internal/models"
	repository "itask.com/itask/internal/repositories"
)

// ReportService builds the read-only derived views: completion history,
// schedule deviation and the ToDo effort forecast. It never mutates tasks.
type ReportService struct {
	repo *repository.TaskRepository
}

func NewReportService(repo *repository.TaskRepository) *ReportService {
	return &ReportService{repo: repo}
}

// Forecast estimation methods, surfaced so the UI can badge the confidence of
// each estimate.
const (
	MetodoMediaDireta = "Média Direta"
	MetodoMediaGlobal = "Média Global"
	MetodoPadrao      = "Padrão"
)

const defaultDiasPorPonto = 1.0

type ConcluidaProgramador struct {
	Id             uint        `json:"Id"`
	Descricao      string      `json:"Descricao"`
	Tipo           string      `json:"Tipo"`
	StoryPoints    int         `json:"StoryPoints"`
	DataRealInicio *model.Date `json:"DataRealInicio"`
	DataRealFim    *model.Date `json:"DataRealFim"`
	DuracaoDias    *int        `json:"DuracaoDias"`
}

type ConcluidaGestor struct {
	Id              uint   `json:"Id"`
	Descricao       string `json:"Descricao"`
	NomeProgramador string `json:"NomeProgramador"`
	Tipo            string `json:"Tipo"`
	StoryPoints     int    `json:"StoryPoints"`
	DuracaoPrevista *int   `json:"DuracaoPrevista"`
	DuracaoReal     *int   `json:"DuracaoReal"`
}

type TarefaEmCurso struct {
	Id              uint       `json:"Id"`
	Descricao       string     `json:"Descricao"`
	NomeProgramador string     `json:"NomeProgramador"`
	Tipo            string     `json:"Tipo"`
	EstadoAtual     string     `json:"EstadoAtual"`
	DataPrevistaFim model.Date `json:"DataPrevistaFim"`
	DiasDiferenca   int        `json:"DiasDiferenca"`
}

type PrevisaoDetalhe struct {
	Id              uint    `json:"Id"`
	Descricao       string  `json:"Descricao"`
	NomeProgramador string  `json:"NomeProgramador"`
	StoryPoints     int     `json:"StoryPoints"`
	EstimativaDias  float64 `json:"EstimativaDias"`
	Metodo          string  `json:"Metodo"`
}

type Previsao struct {
	TotalPrevisto float64           `json:"totalPrevisto"`
	Detalhes      []PrevisaoDetalhe `json:"detalhes"`
}

// HistoricoProgramador is a developer's own completion history.
func (s *ReportService) HistoricoProgramador(ctx context.Context, programadorID uint) ([]ConcluidaProgramador, error) {
	tasks, err := s.repo.ListConcluidasByProgramador(ctx, programadorID)
	if err != nil {
		return nil, err
	}

	out := make([]ConcluidaProgramador, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ConcluidaProgramador{
			Id:             t.Id,
			Descricao:      t.Descricao,
			Tipo:           t.Tipo,
			StoryPoints:    t.StoryPoints,
			DataRealInicio: t.DataRealInicio,
			DataRealFim:    t.DataRealFim,
			DuracaoDias:    duracaoReal(&t.Tarefa),
		})
	}
	return out, nil
}

// HistoricoGestor is the manager's history with planned-versus-real duration.
func (s *ReportService) HistoricoGestor(ctx context.Context, gestorID uint) ([]ConcluidaGestor, error) {
	tasks, err := s.repo.ListConcluidasByGestor(ctx, gestorID)
	if err != nil {
		return nil, err
	}

	out := make([]ConcluidaGestor, 0, len(tasks))
	for _, t := range tasks {
		prevista := t.DataPrevistaInicio.DaysUntil(t.DataPrevistaFim)
		out = append(out, ConcluidaGestor{
			Id:              t.Id,
			Descricao:       t.Descricao,
			NomeProgramador: t.NomeProgramador,
			Tipo:            t.Tipo,
			StoryPoints:     t.StoryPoints,
			DuracaoPrevista: &prevista,
			DuracaoReal:     duracaoReal(&t.Tarefa),
		})
	}
	return out, nil
}

// EmCurso lists the not-yet-completed tasks with the signed day count to the
// planned end date (negative once overdue).
func (s *ReportService) EmCurso(ctx context.Context, gestorID uint) ([]TarefaEmCurso, error) {
	tasks, err := s.repo.ListPendentesByGestor(ctx, gestorID)
	if err != nil {
		return nil, err
	}

	hoje := model.Today()
	out := make([]TarefaEmCurso, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, TarefaEmCurso{
			Id:              t.Id,
			Descricao:       t.Descricao,
			NomeProgramador: t.NomeProgramador,
			Tipo:            t.Tipo,
			EstadoAtual:     string(t.EstadoAtual),
			DataPrevistaFim: t.DataPrevistaFim,
			DiasDiferenca:   hoje.DaysUntil(t.DataPrevistaFim),
		})
	}
	return out, nil
}

// PrevisaoToDo estimates the effort left in ToDo from the team's completion
// history: days-per-point per programmer when they have history, the team
// average otherwise, and a fixed default when nobody has completed anything.
func (s *ReportService) PrevisaoToDo(ctx context.Context, gestorID uint) (*Previsao, error) {
	pendentes, err := s.repo.ListToDoByGestor(ctx, gestorID)
	if err != nil {
		return nil, err
	}

	concluidas, err := s.repo.ListConcluidasByGestor(ctx, gestorID)
	if err != nil {
		return nil, err
	}

	porProgramador, global := diasPorPonto(concluidas)

	previsao := &Previsao{Detalhes: make([]PrevisaoDetalhe, 0, len(pendentes))}
	for _, t := range pendentes {
		ritmo := defaultDiasPorPonto
		metodo := MetodoPadrao

		if r, ok := porProgramador[t.IdProgramador]; ok {
			ritmo, metodo = r, MetodoMediaDireta
		} else if global > 0 {
			ritmo, metodo = global, MetodoMediaGlobal
		}

		estimativa := round1(ritmo * float64(t.StoryPoints))
		previsao.TotalPrevisto += estimativa
		previsao.Detalhes = append(previsao.Detalhes, PrevisaoDetalhe{
			Id:              t.Id,
			Descricao:       t.Descricao,
			NomeProgramador: t.NomeProgramador,
			StoryPoints:     t.StoryPoints,
			EstimativaDias:  estimativa,
			Metodo:          metodo,
		})
	}

	previsao.TotalPrevisto = round1(previsao.TotalPrevisto)
	return previsao, nil
}

// ExportCSV renders the manager's completion history as the downloadable
// tarefas_concluidas.csv.
func (s *ReportService) ExportCSV(ctx context.Context, gestorID uint) ([]byte, error) {
	historico, err := s.HistoricoGestor(ctx, gestorID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Id", "Descricao", "Programador", "Tipo", "StoryPoints", "DuracaoPrevista", "DuracaoReal"}); err != nil {
		return nil, err
	}

	for _, t := range historico {
		record := []string{
			strconv.FormatUint(uint64(t.Id), 10),
			t.Descricao,
			t.NomeProgramador,
			t.Tipo,
			strconv.Itoa(t.StoryPoints),
			formatDias(t.DuracaoPrevista),
			formatDias(t.DuracaoReal),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func duracaoReal(t *model.Tarefa) *int {
	if t.DataRealInicio == nil || t.DataRealFim == nil {
		return nil
	}
	dias := t.DataRealInicio.DaysUntil(*t.DataRealFim)
	return &dias
}

// diasPorPonto aggregates completed work into a days-per-story-point rate per
// programmer plus the team-wide rate.
func diasPorPonto(concluidas []model.TarefaDetalhe) (map[uint]float64, float64) {
	type acc struct {
		dias   int
		pontos int
	}

	porProgramador := make(map[uint]acc)
	var total acc

	for _, t := range concluidas {
		dias := duracaoReal(&t.Tarefa)
		if dias == nil || t.StoryPoints <= 0 {
			continue
		}

		a := porProgramador[t.IdProgramador]
		a.dias += *dias
		a.pontos += t.StoryPoints
		porProgramador[t.IdProgramador] = a

		total.dias += *dias
		total.pontos += t.StoryPoints
	}

	rates := make(map[uint]float64, len(porProgramador))
	for id, a := range porProgramador {
		if a.pontos > 0 {
			rates[id] = float64(a.dias) / float64(a.pontos)
		}
	}

	var global float64
	if total.pontos > 0 {
		global = float64(total.dias) / float64(total.pontos)
	}
	return rates, global
}

func formatDias(dias *int) string {
	if dias == nil {
		return ""
	}
	return strconv.Itoa(*dias)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
