package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"agua-be-svc/internal/metrics"
	"agua-be-svc/internal/models"
	"agua-be-svc/internal/models/response"
	"agua-be-svc/internal/repository"
	"agua-be-svc/internal/tariff"
	"agua-be-svc/pkg/logger"
)

var (
	// ErrPeriodoFechado is returned when a recompute targets a closed period
	ErrPeriodoFechado = errors.New("período fechado para recálculo")

	// ErrNoConsumptionData is returned when a recompute is requested but the
	// readings sum to zero; nothing is billed and the administrator is told
	// to register readings first
	ErrNoConsumptionData = errors.New("nenhum consumo registrado para o período")
)

// BillingService defines the interface for water-billing operations
type BillingService interface {
	RecalculatePeriod(ctx context.Context, periodoID uint, leituras map[uint]decimal.Decimal) (*RecalculationResponse, error)
	GetDetalhamento(consumoID uint) (*tariff.Detalhamento, error)
	GetConsumosByPeriodo(periodoID uint) ([]*response.ConsumoDetalheResponse, error)
	GetConsumosByMorador(moradorID uint) ([]*response.ConsumoDetalheResponse, error)
}

// RecalculationResponse reports the outcome of a period recompute
type RecalculationResponse struct {
	PeriodoID      uint            `json:"periodo_id"`
	TotalMoradores int             `json:"total_moradores"`
	SuccessCount   int             `json:"success_count"`
	FailedCount    int             `json:"failed_count"`
	TotalConsumo   decimal.Decimal `json:"total_consumo"`
	ValorM3        decimal.Decimal `json:"valor_m3"`
	Errors         []string        `json:"errors,omitempty"`
}

// billingService implements BillingService
type billingService struct {
	periodoRepo   repository.PeriodoRepository
	moradorRepo   repository.MoradorRepository
	consumoRepo   repository.ConsumoRepository
	configRepo    repository.ConfiguracaoRepository
	pagamentoRepo repository.PagamentoRepository
	logger        *logger.Logger
}

// NewBillingService creates a new instance of BillingService
func NewBillingService(
	periodoRepo repository.PeriodoRepository,
	moradorRepo repository.MoradorRepository,
	consumoRepo repository.ConsumoRepository,
	configRepo repository.ConfiguracaoRepository,
	pagamentoRepo repository.PagamentoRepository,
	logger *logger.Logger,
) BillingService {
	return &billingService{
		periodoRepo:   periodoRepo,
		moradorRepo:   moradorRepo,
		consumoRepo:   consumoRepo,
		configRepo:    configRepo,
		pagamentoRepo: pagamentoRepo,
		logger:        logger,
	}
}

// RecalculatePeriod derives the period's price per m³ from its expenses and
// the readings, runs the tariff calculation for every active resident with a
// reading and persists the resulting charges atomically.
//
// The tariff configuration is validated once, before any calculation; a
// structurally invalid schedule aborts the whole recompute. Readings summing
// to zero abort with ErrNoConsumptionData. Readings for unknown or inactive
// residents are skipped and reported in the response.
func (s *billingService) RecalculatePeriod(ctx context.Context, periodoID uint, leituras map[uint]decimal.Decimal) (*RecalculationResponse, error) {
	periodo, err := s.periodoRepo.GetByID(periodoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get period: %w", err)
	}
	if periodo.Fechado {
		return nil, ErrPeriodoFechado
	}

	config, err := s.configRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get tariff configuration: %w", err)
	}
	if err := tariff.ValidateConfig(config); err != nil {
		s.logger.WithError(err).Error("Tariff configuration rejected before recompute")
		return nil, err
	}

	for moradorID, leitura := range leituras {
		if leitura.IsNegative() {
			return nil, fmt.Errorf("leitura negativa para morador %d", moradorID)
		}
	}

	moradores, err := s.moradorRepo.GetAtivos()
	if err != nil {
		return nil, fmt.Errorf("failed to get residents: %w", err)
	}
	moradoresPorID := make(map[uint]*models.Morador, len(moradores))
	for _, m := range moradores {
		moradoresPorID[m.ID] = m
	}

	resp := &RecalculationResponse{PeriodoID: periodoID}

	totalConsumo := decimal.Zero
	for moradorID, leitura := range leituras {
		if _, ok := moradoresPorID[moradorID]; !ok {
			resp.Errors = append(resp.Errors, fmt.Sprintf("morador %d não encontrado ou inativo", moradorID))
			continue
		}
		totalConsumo = totalConsumo.Add(leitura)
	}

	if totalConsumo.IsZero() {
		metrics.RecalculationsTotal.WithLabelValues("no_consumption").Inc()
		return nil, ErrNoConsumptionData
	}

	valorM3 := tariff.ValorM3(periodo, totalConsumo)
	resp.TotalConsumo = totalConsumo
	resp.ValorM3 = valorM3

	// compute every charge before touching the database
	ids := make([]uint, 0, len(leituras))
	for moradorID := range leituras {
		if _, ok := moradoresPorID[moradorID]; ok {
			ids = append(ids, moradorID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	consumos := make([]*models.Consumo, 0, len(ids))
	for _, moradorID := range ids {
		morador := moradoresPorID[moradorID]
		leitura := leituras[moradorID]

		calculo := tariff.Calculate(leitura, valorM3, morador.TemHidrometro, config, decimal.Zero)
		consumos = append(consumos, &models.Consumo{
			PeriodoID:      periodoID,
			MoradorID:      moradorID,
			ConsumoM3:      leitura,
			ValorCalculado: calculo.ValorTotal,
			DespesaExtra:   decimal.Zero,
		})
	}
	resp.TotalMoradores = len(consumos)

	if err := s.consumoRepo.SaveRecalculation(ctx, periodoID, totalConsumo, consumos); err != nil {
		resp.FailedCount = len(consumos)
		resp.Errors = append(resp.Errors, err.Error())
		metrics.RecalculationsTotal.WithLabelValues("failed").Inc()
		s.logger.WithError(err).WithField("periodo_id", periodoID).Error("Period recompute rolled back")
		return resp, fmt.Errorf("failed to save recalculation: %w", err)
	}

	resp.SuccessCount = len(consumos)
	metrics.RecalculationsTotal.WithLabelValues("success").Inc()
	metrics.ResidentsRecalculated.Add(float64(resp.SuccessCount))

	s.logger.WithFields(map[string]interface{}{
		"periodo_id":    periodoID,
		"moradores":     resp.SuccessCount,
		"total_consumo": totalConsumo.String(),
		"valor_m3":      valorM3.String(),
	}).Info("Period recalculated successfully")

	return resp, nil
}

// GetDetalhamento rebuilds the calculation breakdown for a stored consumption
// record using the period's persisted totals and the active tariff schedule
func (s *billingService) GetDetalhamento(consumoID uint) (*tariff.Detalhamento, error) {
	consumo, err := s.consumoRepo.GetByID(consumoID)
	if err != nil {
		return nil, fmt.Errorf("consumption record not found: %w", err)
	}
	if consumo.Periodo == nil || consumo.Morador == nil {
		return nil, fmt.Errorf("consumption record %d is missing period or resident", consumoID)
	}

	config, err := s.configRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get tariff configuration: %w", err)
	}

	valorM3 := tariff.ValorM3(consumo.Periodo, consumo.Periodo.TotalConsumo)
	return tariff.Calculate(consumo.ConsumoM3, valorM3, consumo.Morador.TemHidrometro, config, consumo.DespesaExtra), nil
}

// GetConsumosByPeriodo lists a period's billed consumption rows with each
// resident's current payment status
func (s *billingService) GetConsumosByPeriodo(periodoID uint) ([]*response.ConsumoDetalheResponse, error) {
	periodo, err := s.periodoRepo.GetByID(periodoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get period: %w", err)
	}

	consumos, err := s.consumoRepo.GetByPeriodo(periodoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get consumption records: %w", err)
	}

	results := make([]*response.ConsumoDetalheResponse, 0, len(consumos))
	for _, consumo := range consumos {
		item := s.toDetalheResponse(consumo, periodo)
		results = append(results, item)
	}

	return results, nil
}

// GetConsumosByMorador lists a resident's billing history, including the
// rebuilt breakdown lines shown on the resident portal
func (s *billingService) GetConsumosByMorador(moradorID uint) ([]*response.ConsumoDetalheResponse, error) {
	morador, err := s.moradorRepo.GetByID(moradorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get resident: %w", err)
	}

	consumos, err := s.consumoRepo.GetByMorador(moradorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get consumption records: %w", err)
	}

	config, err := s.configRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get tariff configuration: %w", err)
	}

	results := make([]*response.ConsumoDetalheResponse, 0, len(consumos))
	for _, consumo := range consumos {
		if consumo.Periodo == nil {
			continue
		}
		item := s.toDetalheResponse(consumo, consumo.Periodo)
		item.MoradorID = morador.ID
		item.NumeroChacara = morador.NumeroChacara
		item.NomeMorador = morador.Nome

		valorM3 := tariff.ValorM3(consumo.Periodo, consumo.Periodo.TotalConsumo)
		calculo := tariff.Calculate(consumo.ConsumoM3, valorM3, morador.TemHidrometro, config, consumo.DespesaExtra)
		item.Descricao = calculo.Descricao

		results = append(results, item)
	}

	return results, nil
}

// toDetalheResponse maps a consumption row plus its payments to the response
// shape
func (s *billingService) toDetalheResponse(consumo *models.Consumo, periodo *models.Periodo) *response.ConsumoDetalheResponse {
	item := &response.ConsumoDetalheResponse{
		ConsumoID:      consumo.ID,
		PeriodoID:      periodo.ID,
		MoradorID:      consumo.MoradorID,
		Mes:            periodo.Mes,
		MesNome:        models.NomeMes(periodo.Mes),
		Ano:            periodo.Ano,
		ConsumoM3:      consumo.ConsumoM3,
		ValorCalculado: consumo.ValorCalculado,
		DespesaExtra:   consumo.DespesaExtra,
	}
	if consumo.Morador != nil {
		item.NumeroChacara = consumo.Morador.NumeroChacara
		item.NomeMorador = consumo.Morador.Nome
		if consumo.Morador.Telefone != nil {
			item.Telefone = *consumo.Morador.Telefone
		}
	}

	pagamentos, err := s.pagamentoRepo.GetByConsumo(consumo.ID)
	if err != nil {
		s.logger.WithError(err).WithField("consumo_id", consumo.ID).Error("Failed to load payments for consumption")
		item.StatusPagamento = response.StatusSemPagamento
		return item
	}
	item.StatusPagamento = StatusPagamento(pagamentos)

	return item
}

// StatusPagamento resolves the effective payment status of a consumption from
// its payment attempts: aprovado wins, then pendente, then rejeitado
func StatusPagamento(pagamentos []*models.Pagamento) string {
	status := response.StatusSemPagamento
	for _, p := range pagamentos {
		switch p.Status {
		case models.PagamentoStatusAprovado:
			return models.PagamentoStatusAprovado
		case models.PagamentoStatusPendente:
			status = models.PagamentoStatusPendente
		case models.PagamentoStatusRejeitado:
			if status == response.StatusSemPagamento {
				status = models.PagamentoStatusRejeitado
			}
		}
	}
	return status
}
