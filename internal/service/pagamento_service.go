package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"agua-be-svc/internal/metrics"
	"agua-be-svc/internal/models"
	"agua-be-svc/internal/repository"
	"agua-be-svc/pkg/logger"
)

var (
	// ErrPagamentoDuplicado is returned when a consumption already has an
	// approved or pending payment claim
	ErrPagamentoDuplicado = errors.New("já existe um pagamento pendente ou aprovado para esta cobrança")

	// ErrPagamentoJaRevisado is returned when an administrator reviews a claim
	// that is no longer pending
	ErrPagamentoJaRevisado = errors.New("pagamento já foi revisado")
)

// PagamentoService defines the interface for PIX payment-claim operations
type PagamentoService interface {
	Declarar(consumoID uint) (*models.Pagamento, error)
	Aprovar(id uint) (*models.Pagamento, error)
	Rejeitar(id uint) (*models.Pagamento, error)
	GetByPeriodo(periodoID uint) ([]*models.Pagamento, error)
}

// pagamentoService implements PagamentoService
type pagamentoService struct {
	pagamentoRepo repository.PagamentoRepository
	consumoRepo   repository.ConsumoRepository
	logger        *logger.Logger
}

// NewPagamentoService creates a new instance of PagamentoService
func NewPagamentoService(
	pagamentoRepo repository.PagamentoRepository,
	consumoRepo repository.ConsumoRepository,
	logger *logger.Logger,
) PagamentoService {
	return &pagamentoService{
		pagamentoRepo: pagamentoRepo,
		consumoRepo:   consumoRepo,
		logger:        logger,
	}
}

// Declarar records a resident's claim of having paid a charge via PIX. The
// claim starts as pendente and waits for administrator review. A consumption
// with a pending or approved claim cannot be claimed again.
func (s *pagamentoService) Declarar(consumoID uint) (*models.Pagamento, error) {
	consumo, err := s.consumoRepo.GetByID(consumoID)
	if err != nil {
		return nil, fmt.Errorf("cobrança não encontrada: %w", err)
	}

	existentes, err := s.pagamentoRepo.GetByConsumo(consumoID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing payments: %w", err)
	}
	for _, p := range existentes {
		if p.Status == models.PagamentoStatusPendente || p.Status == models.PagamentoStatusAprovado {
			return nil, ErrPagamentoDuplicado
		}
	}

	now := time.Now()
	comprovante := fmt.Sprintf("Pagamento via PIX - %s", now.Format("02/01/2006 15:04"))
	pagamento := &models.Pagamento{
		Referencia:    uuid.New().String(),
		ConsumoID:     consumo.ID,
		MoradorID:     consumo.MoradorID,
		PeriodoID:     consumo.PeriodoID,
		Valor:         consumo.ValorCalculado,
		DataPagamento: now,
		Comprovante:   &comprovante,
		Status:        models.PagamentoStatusPendente,
	}

	if err := s.pagamentoRepo.Create(pagamento); err != nil {
		return nil, fmt.Errorf("failed to create payment claim: %w", err)
	}

	metrics.PaymentClaimsTotal.Inc()
	s.logger.WithFields(map[string]interface{}{
		"pagamento_id": pagamento.ID,
		"consumo_id":   consumoID,
		"referencia":   pagamento.Referencia,
	}).Info("Payment claim declared")

	return pagamento, nil
}

// Aprovar marks a pending claim as aprovado
func (s *pagamentoService) Aprovar(id uint) (*models.Pagamento, error) {
	return s.revisar(id, models.PagamentoStatusAprovado)
}

// Rejeitar marks a pending claim as rejeitado; the resident may declare again
func (s *pagamentoService) Rejeitar(id uint) (*models.Pagamento, error) {
	return s.revisar(id, models.PagamentoStatusRejeitado)
}

func (s *pagamentoService) revisar(id uint, status string) (*models.Pagamento, error) {
	pagamento, err := s.pagamentoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pagamento.Status != models.PagamentoStatusPendente {
		return nil, ErrPagamentoJaRevisado
	}

	if err := s.pagamentoRepo.UpdateStatus(id, status); err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	pagamento.Status = status

	metrics.PaymentDecisionsTotal.WithLabelValues(status).Inc()
	s.logger.WithFields(map[string]interface{}{
		"pagamento_id": id,
		"status":       status,
	}).Info("Payment claim reviewed")

	return pagamento, nil
}

// GetByPeriodo lists a period's payment claims, newest first
func (s *pagamentoService) GetByPeriodo(periodoID uint) ([]*models.Pagamento, error) {
	return s.pagamentoRepo.GetByPeriodo(periodoID)
}
