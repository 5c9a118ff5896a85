package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"agua-be-svc/internal/models"
	"agua-be-svc/internal/models/response"
	"agua-be-svc/internal/repository"
	"agua-be-svc/pkg/logger"
	"agua-be-svc/pkg/phoneutil"
)

// ErrMoradorSemTelefone is returned when a charge message is requested for a
// resident without a registered phone number
var ErrMoradorSemTelefone = errors.New("morador não possui telefone cadastrado")

// mensagemCobrancaPadrao is used when no template is configured
const mensagemCobrancaPadrao = "Olá {nome}! Sua conta de água de {mes}/{ano} ficou em R$ {valor}. " +
	"Pague via PIX para a chave {chave_pix} e declare o pagamento no portal. Obrigado!"

// NotificationService defines the interface for WhatsApp charge notifications
type NotificationService interface {
	GetCobrancasWhatsApp(periodoID uint) ([]*response.CobrancaWhatsAppResponse, error)
	MarcarEnviado(periodoID uint, moradorID uint) error
}

// notificationService implements NotificationService
type notificationService struct {
	billingSvc  BillingService
	periodoRepo repository.PeriodoRepository
	configRepo  repository.ConfiguracaoRepository
	envioRepo   repository.CobrancaEnvioRepository
	logger      *logger.Logger
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(
	billingSvc BillingService,
	periodoRepo repository.PeriodoRepository,
	configRepo repository.ConfiguracaoRepository,
	envioRepo repository.CobrancaEnvioRepository,
	logger *logger.Logger,
) NotificationService {
	return &notificationService{
		billingSvc:  billingSvc,
		periodoRepo: periodoRepo,
		configRepo:  configRepo,
		envioRepo:   envioRepo,
		logger:      logger,
	}
}

// montaMensagem fills the charge template for one resident
func montaMensagem(template string, consumo *response.ConsumoDetalheResponse, config *models.Configuracao) string {
	if strings.TrimSpace(template) == "" {
		template = mensagemCobrancaPadrao
	}

	replacer := strings.NewReplacer(
		"{nome}", consumo.NomeMorador,
		"{chacara}", consumo.NumeroChacara,
		"{mes}", consumo.MesNome,
		"{ano}", fmt.Sprintf("%d", consumo.Ano),
		"{consumo}", consumo.ConsumoM3.StringFixed(1),
		"{valor}", consumo.ValorCalculado.StringFixed(2),
		"{chave_pix}", config.ChavePix,
		"{associacao}", config.NomeAssociacao,
	)
	return replacer.Replace(template)
}

// GetCobrancasWhatsApp builds one ready-to-send WhatsApp deep link per billed
// resident of the period, marking the residents that were already notified so
// the administrator does not send the same charge twice.
//
// Residents without a phone number or with an approved payment are skipped.
func (s *notificationService) GetCobrancasWhatsApp(periodoID uint) ([]*response.CobrancaWhatsAppResponse, error) {
	if _, err := s.periodoRepo.GetByID(periodoID); err != nil {
		return nil, fmt.Errorf("failed to get period: %w", err)
	}

	config, err := s.configRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}

	consumos, err := s.billingSvc.GetConsumosByPeriodo(periodoID)
	if err != nil {
		return nil, err
	}

	envios, err := s.envioRepo.GetByPeriodo(periodoID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sent charges: %w", err)
	}
	enviados := make(map[uint]bool, len(envios))
	for _, envio := range envios {
		enviados[envio.MoradorID] = true
	}

	cobrancas := make([]*response.CobrancaWhatsAppResponse, 0, len(consumos))
	for _, consumo := range consumos {
		if consumo.Telefone == "" {
			continue
		}
		if consumo.StatusPagamento == models.PagamentoStatusAprovado {
			continue
		}

		mensagem := montaMensagem(config.MensagemCobrancaTemplate, consumo, config)
		cobrancas = append(cobrancas, &response.CobrancaWhatsAppResponse{
			MoradorID: consumo.MoradorID,
			Telefone:  phoneutil.Format(consumo.Telefone),
			Mensagem:  mensagem,
			URL:       fmt.Sprintf("https://wa.me/%s?text=%s", phoneutil.ToWhatsApp(consumo.Telefone), url.QueryEscape(mensagem)),
			JaEnviado: enviados[consumo.MoradorID],
		})
	}

	return cobrancas, nil
}

// MarcarEnviado records that the charge message for (period, resident) was
// sent; sending again only refreshes the timestamp
func (s *notificationService) MarcarEnviado(periodoID uint, moradorID uint) error {
	err := s.envioRepo.Register(&models.CobrancaEnvio{
		PeriodoID: periodoID,
		MoradorID: moradorID,
		EnviadoEm: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to register sent charge: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"periodo_id": periodoID,
		"morador_id": moradorID,
	}).Info("Charge message marked as sent")

	return nil
}
