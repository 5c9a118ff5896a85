package service

import (
	"fmt"

	"agua-be-svc/internal/models"
	"agua-be-svc/internal/models/response"
	"agua-be-svc/internal/repository"
	"agua-be-svc/internal/tariff"
)

// ResumoService defines the interface for period billing summaries
type ResumoService interface {
	GetResumoPeriodo(periodoID uint) (*response.ResumoPeriodoResponse, error)
}

// resumoService implements ResumoService
type resumoService struct {
	resumoRepo  repository.ResumoRepository
	periodoRepo repository.PeriodoRepository
}

// NewResumoService creates a new instance of ResumoService
func NewResumoService(resumoRepo repository.ResumoRepository, periodoRepo repository.PeriodoRepository) ResumoService {
	return &resumoService{
		resumoRepo:  resumoRepo,
		periodoRepo: periodoRepo,
	}
}

// GetResumoPeriodo combines the period's stored totals with the aggregated
// payment figures
func (s *resumoService) GetResumoPeriodo(periodoID uint) (*response.ResumoPeriodoResponse, error) {
	periodo, err := s.periodoRepo.GetByID(periodoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get period: %w", err)
	}

	resumo, err := s.resumoRepo.GetResumoPeriodo(periodoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get period summary: %w", err)
	}

	resumo.Mes = periodo.Mes
	resumo.MesNome = models.NomeMes(periodo.Mes)
	resumo.Ano = periodo.Ano
	resumo.Fechado = periodo.Fechado
	resumo.TotalDespesas = tariff.TotalDespesas(periodo)
	resumo.TotalConsumo = periodo.TotalConsumo
	resumo.ValorM3 = tariff.ValorM3(periodo, periodo.TotalConsumo)

	return resumo, nil
}
