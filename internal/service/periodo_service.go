package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"agua-be-svc/internal/models"
	"agua-be-svc/internal/repository"
	"agua-be-svc/internal/tariff"
	"agua-be-svc/pkg/logger"
)

// ErrPeriodoDuplicado is returned when a period for the same month and year
// already exists
var ErrPeriodoDuplicado = errors.New("período já existe para o mês e ano informados")

// PeriodoService defines the interface for billing-period operations
type PeriodoService interface {
	Create(req *CreatePeriodoRequest) (*models.Periodo, error)
	GetAll() ([]*models.Periodo, error)
	GetByID(id uint) (*models.Periodo, error)
	UpdateDespesas(id uint, req *UpdateDespesasRequest) (*models.Periodo, error)
	Fechar(id uint) (*models.Periodo, error)
	Reabrir(id uint) (*models.Periodo, error)
	EnsurePeriodoExists(mes int, ano int) (*models.Periodo, bool, error)
}

// CreatePeriodoRequest carries the data to open a new billing period
type CreatePeriodoRequest struct {
	Mes                    int             `json:"mes" binding:"required,min=1,max=12"`
	Ano                    int             `json:"ano" binding:"required,min=2000,max=2100"`
	DespesaEnergia         decimal.Decimal `json:"despesa_energia"`
	DespesaOutros          decimal.Decimal `json:"despesa_outros"`
	DespesaServicoCobranca decimal.Decimal `json:"despesa_servico_cobranca"`
	DespesaExtraTotal      decimal.Decimal `json:"despesa_extra_total"`
}

// UpdateDespesasRequest carries expense adjustments for an open period
type UpdateDespesasRequest struct {
	DespesaEnergia         decimal.Decimal `json:"despesa_energia"`
	DespesaOutros          decimal.Decimal `json:"despesa_outros"`
	DespesaServicoCobranca decimal.Decimal `json:"despesa_servico_cobranca"`
	DespesaExtraTotal      decimal.Decimal `json:"despesa_extra_total"`
}

// periodoService implements PeriodoService
type periodoService struct {
	periodoRepo repository.PeriodoRepository
	logger      *logger.Logger
}

// NewPeriodoService creates a new instance of PeriodoService
func NewPeriodoService(periodoRepo repository.PeriodoRepository, logger *logger.Logger) PeriodoService {
	return &periodoService{
		periodoRepo: periodoRepo,
		logger:      logger,
	}
}

func validaDespesas(valores ...decimal.Decimal) error {
	for _, v := range valores {
		if v.IsNegative() {
			return errors.New("despesas não podem ser negativas")
		}
	}
	return nil
}

// Create opens a new billing period for a (month, year) pair
func (s *periodoService) Create(req *CreatePeriodoRequest) (*models.Periodo, error) {
	if req.Mes < 1 || req.Mes > 12 {
		return nil, errors.New("mês inválido: deve estar entre 1 e 12")
	}
	if err := validaDespesas(req.DespesaEnergia, req.DespesaOutros, req.DespesaServicoCobranca, req.DespesaExtraTotal); err != nil {
		return nil, err
	}

	existing, err := s.periodoRepo.GetByMesAno(req.Mes, req.Ano)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing period: %w", err)
	}
	if existing != nil {
		return nil, ErrPeriodoDuplicado
	}

	periodo := &models.Periodo{
		Mes:                    req.Mes,
		Ano:                    req.Ano,
		DespesaEnergia:         req.DespesaEnergia,
		DespesaOutros:          req.DespesaOutros,
		DespesaServicoCobranca: req.DespesaServicoCobranca,
		DespesaExtraTotal:      req.DespesaExtraTotal,
		TotalConsumo:           decimal.Zero,
	}
	periodo.ValorTotal = tariff.TotalDespesas(periodo)

	if err := s.periodoRepo.Create(periodo); err != nil {
		return nil, fmt.Errorf("failed to create period: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"periodo_id": periodo.ID,
		"mes":        periodo.Mes,
		"ano":        periodo.Ano,
	}).Info("Billing period created")

	return periodo, nil
}

// GetAll lists periods, newest first
func (s *periodoService) GetAll() ([]*models.Periodo, error) {
	return s.periodoRepo.GetAll()
}

// GetByID retrieves a period
func (s *periodoService) GetByID(id uint) (*models.Periodo, error) {
	return s.periodoRepo.GetByID(id)
}

// UpdateDespesas adjusts an open period's expenses and re-derives its total.
// The stored consumption charges are not touched; a recompute must be run for
// the new expenses to reach the residents.
func (s *periodoService) UpdateDespesas(id uint, req *UpdateDespesasRequest) (*models.Periodo, error) {
	periodo, err := s.periodoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if periodo.Fechado {
		return nil, ErrPeriodoFechado
	}
	if err := validaDespesas(req.DespesaEnergia, req.DespesaOutros, req.DespesaServicoCobranca, req.DespesaExtraTotal); err != nil {
		return nil, err
	}

	periodo.DespesaEnergia = req.DespesaEnergia
	periodo.DespesaOutros = req.DespesaOutros
	periodo.DespesaServicoCobranca = req.DespesaServicoCobranca
	periodo.DespesaExtraTotal = req.DespesaExtraTotal
	periodo.ValorTotal = tariff.TotalDespesas(periodo)

	if err := s.periodoRepo.Update(periodo); err != nil {
		return nil, fmt.Errorf("failed to update period expenses: %w", err)
	}

	return periodo, nil
}

// Fechar closes a period so it can no longer be recalculated
func (s *periodoService) Fechar(id uint) (*models.Periodo, error) {
	periodo, err := s.periodoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if periodo.Fechado {
		return periodo, nil
	}

	if err := s.periodoRepo.SetFechado(id, true); err != nil {
		return nil, fmt.Errorf("failed to close period: %w", err)
	}
	periodo.Fechado = true

	s.logger.WithField("periodo_id", id).Info("Billing period closed")
	return periodo, nil
}

// Reabrir reopens a closed period for corrections
func (s *periodoService) Reabrir(id uint) (*models.Periodo, error) {
	periodo, err := s.periodoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !periodo.Fechado {
		return periodo, nil
	}

	if err := s.periodoRepo.SetFechado(id, false); err != nil {
		return nil, fmt.Errorf("failed to reopen period: %w", err)
	}
	periodo.Fechado = false

	s.logger.WithField("periodo_id", id).Info("Billing period reopened")
	return periodo, nil
}

// EnsurePeriodoExists creates the period for (mes, ano) if absent, with zeroed
// expenses to be filled in later. Returns whether a new period was created.
func (s *periodoService) EnsurePeriodoExists(mes int, ano int) (*models.Periodo, bool, error) {
	existing, err := s.periodoRepo.GetByMesAno(mes, ano)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to check period %d/%d: %w", mes, ano, err)
	}

	periodo, err := s.Create(&CreatePeriodoRequest{Mes: mes, Ano: ano})
	if err != nil {
		if errors.Is(err, ErrPeriodoDuplicado) {
			// created concurrently between the check and the insert
			existing, getErr := s.periodoRepo.GetByMesAno(mes, ano)
			if getErr == nil {
				return existing, false, nil
			}
		}
		return nil, false, err
	}

	return periodo, true, nil
}

// PeriodoAtual returns the month and year of the current billing period
func PeriodoAtual(now time.Time) (int, int) {
	return int(now.Month()), now.Year()
}
