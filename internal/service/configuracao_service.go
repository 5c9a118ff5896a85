package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"agua-be-svc/internal/models"
	"agua-be-svc/internal/repository"
	"agua-be-svc/internal/tariff"
	"agua-be-svc/pkg/logger"
)

// ConfiguracaoService defines the interface for association and tariff
// configuration
type ConfiguracaoService interface {
	Get() (*models.Configuracao, error)
	Update(req *ConfiguracaoRequest) (*models.Configuracao, error)
}

// ConfiguracaoRequest carries the full configuration payload; the tariff
// schedule is validated before being saved
type ConfiguracaoRequest struct {
	ChavePix                 string          `json:"chave_pix" binding:"required"`
	NomeAssociacao           string          `json:"nome_associacao" binding:"required"`
	TelefoneContato          string          `json:"telefone_contato"`
	MensagemCobrancaTemplate string          `json:"mensagem_cobranca_template"`
	TaxaMinimaComHidrometro  decimal.Decimal `json:"taxa_minima_com_hidrometro"`
	TaxaMinimaSemHidrometro  decimal.Decimal `json:"taxa_minima_sem_hidrometro"`
	TaxaAssociado            decimal.Decimal `json:"taxa_associado"`
	PercentualMultaAtraso    decimal.Decimal `json:"percentual_multa_atraso"`
	FaixaNormalAte           int             `json:"faixa_normal_ate"`
	FaixaExcedente1Ate       int             `json:"faixa_excedente1_ate"`
	FaixaExcedente1Percent   decimal.Decimal `json:"faixa_excedente1_percent"`
	FaixaExcedente2Percent   decimal.Decimal `json:"faixa_excedente2_percent"`
}

// configuracaoService implements ConfiguracaoService
type configuracaoService struct {
	configRepo repository.ConfiguracaoRepository
	logger     *logger.Logger
}

// NewConfiguracaoService creates a new instance of ConfiguracaoService
func NewConfiguracaoService(configRepo repository.ConfiguracaoRepository, logger *logger.Logger) ConfiguracaoService {
	return &configuracaoService{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Get retrieves the active configuration
func (s *configuracaoService) Get() (*models.Configuracao, error) {
	return s.configRepo.GetActive()
}

// Update validates and saves the configuration. An invalid tariff schedule is
// rejected so later recomputes never run against a broken configuration.
func (s *configuracaoService) Update(req *ConfiguracaoRequest) (*models.Configuracao, error) {
	if req.ChavePix == "" {
		return nil, errors.New("chave PIX é obrigatória")
	}
	if req.NomeAssociacao == "" {
		return nil, errors.New("nome da associação é obrigatório")
	}

	config, err := s.configRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get current configuration: %w", err)
	}

	config.ChavePix = req.ChavePix
	config.NomeAssociacao = req.NomeAssociacao
	config.TelefoneContato = req.TelefoneContato
	config.MensagemCobrancaTemplate = req.MensagemCobrancaTemplate
	config.TaxaMinimaComHidrometro = req.TaxaMinimaComHidrometro
	config.TaxaMinimaSemHidrometro = req.TaxaMinimaSemHidrometro
	config.TaxaAssociado = req.TaxaAssociado
	config.PercentualMultaAtraso = req.PercentualMultaAtraso
	config.FaixaNormalAte = req.FaixaNormalAte
	config.FaixaExcedente1Ate = req.FaixaExcedente1Ate
	config.FaixaExcedente1Percent = req.FaixaExcedente1Percent
	config.FaixaExcedente2Percent = req.FaixaExcedente2Percent

	if err := tariff.ValidateConfig(config); err != nil {
		return nil, err
	}

	if err := s.configRepo.Save(config); err != nil {
		return nil, fmt.Errorf("failed to save configuration: %w", err)
	}

	s.logger.Info("Configuration updated")
	return config, nil
}
