package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"agua-be-svc/internal/models"
	"agua-be-svc/internal/models/response"
	"agua-be-svc/internal/repository"
	"agua-be-svc/pkg/logger"
	"agua-be-svc/pkg/phoneutil"
)

var (
	// ErrChacaraDuplicada is returned when a chácara number is already taken
	ErrChacaraDuplicada = errors.New("já existe um morador com este número de chácara")

	// ErrTelefoneInvalido is returned for phone numbers that are not valid
	// Brazilian mobile numbers
	ErrTelefoneInvalido = errors.New("telefone inválido: informe DDD e número de celular")
)

// MoradorService defines the interface for resident operations
type MoradorService interface {
	GetAll(search string, page int, limit int) ([]*models.Morador, int64, error)
	GetByID(id uint) (*models.Morador, error)
	Create(req *MoradorRequest) (*models.Morador, error)
	Update(id uint, req *MoradorRequest) (*models.Morador, error)
	Desativar(id uint) error
	GetPortalByChacara(numeroChacara string) (*response.MoradorPortalResponse, error)
}

// MoradorRequest carries the data to create or update a resident
type MoradorRequest struct {
	NumeroChacara string  `json:"numero_chacara" binding:"required"`
	Nome          string  `json:"nome" binding:"required"`
	Telefone      *string `json:"telefone"`
	TemHidrometro bool    `json:"tem_hidrometro"`
	Ativo         *bool   `json:"ativo"`
}

// moradorService implements MoradorService
type moradorService struct {
	moradorRepo repository.MoradorRepository
	configRepo  repository.ConfiguracaoRepository
	billingSvc  BillingService
	logger      *logger.Logger
}

// NewMoradorService creates a new instance of MoradorService
func NewMoradorService(
	moradorRepo repository.MoradorRepository,
	configRepo repository.ConfiguracaoRepository,
	billingSvc BillingService,
	logger *logger.Logger,
) MoradorService {
	return &moradorService{
		moradorRepo: moradorRepo,
		configRepo:  configRepo,
		billingSvc:  billingSvc,
		logger:      logger,
	}
}

// GetAll lists residents with optional search on name or chácara number
func (s *moradorService) GetAll(search string, page int, limit int) ([]*models.Morador, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.moradorRepo.GetAll(search, page, limit)
}

// GetByID retrieves a resident
func (s *moradorService) GetByID(id uint) (*models.Morador, error) {
	return s.moradorRepo.GetByID(id)
}

func normalizaTelefone(telefone *string) (*string, error) {
	if telefone == nil || *telefone == "" {
		return nil, nil
	}
	if !phoneutil.IsValid(*telefone) {
		return nil, ErrTelefoneInvalido
	}
	digits := phoneutil.OnlyDigits(*telefone)
	return &digits, nil
}

// Create registers a new resident with a unique chácara number
func (s *moradorService) Create(req *MoradorRequest) (*models.Morador, error) {
	existing, err := s.moradorRepo.GetByNumeroChacara(req.NumeroChacara)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check chácara number: %w", err)
	}
	if existing != nil {
		return nil, ErrChacaraDuplicada
	}

	telefone, err := normalizaTelefone(req.Telefone)
	if err != nil {
		return nil, err
	}

	morador := &models.Morador{
		NumeroChacara: req.NumeroChacara,
		Nome:          req.Nome,
		Telefone:      telefone,
		TemHidrometro: req.TemHidrometro,
		Ativo:         true,
	}
	if req.Ativo != nil {
		morador.Ativo = *req.Ativo
	}

	if err := s.moradorRepo.Create(morador); err != nil {
		return nil, fmt.Errorf("failed to create resident: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"morador_id":     morador.ID,
		"numero_chacara": morador.NumeroChacara,
	}).Info("Resident created")

	return morador, nil
}

// Update modifies an existing resident
func (s *moradorService) Update(id uint, req *MoradorRequest) (*models.Morador, error) {
	morador, err := s.moradorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.NumeroChacara != morador.NumeroChacara {
		existing, err := s.moradorRepo.GetByNumeroChacara(req.NumeroChacara)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check chácara number: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, ErrChacaraDuplicada
		}
	}

	telefone, err := normalizaTelefone(req.Telefone)
	if err != nil {
		return nil, err
	}

	morador.NumeroChacara = req.NumeroChacara
	morador.Nome = req.Nome
	morador.Telefone = telefone
	morador.TemHidrometro = req.TemHidrometro
	if req.Ativo != nil {
		morador.Ativo = *req.Ativo
	}

	if err := s.moradorRepo.Update(morador); err != nil {
		return nil, fmt.Errorf("failed to update resident: %w", err)
	}

	return morador, nil
}

// Desativar marks a resident as inactive; their billing history is kept
func (s *moradorService) Desativar(id uint) error {
	morador, err := s.moradorRepo.GetByID(id)
	if err != nil {
		return err
	}

	morador.Ativo = false
	if err := s.moradorRepo.Update(morador); err != nil {
		return fmt.Errorf("failed to deactivate resident: %w", err)
	}

	s.logger.WithField("morador_id", id).Info("Resident deactivated")
	return nil
}

// GetPortalByChacara builds the public resident-portal payload: the resident's
// billing history plus the association's PIX details for payment
func (s *moradorService) GetPortalByChacara(numeroChacara string) (*response.MoradorPortalResponse, error) {
	morador, err := s.moradorRepo.GetByNumeroChacara(numeroChacara)
	if err != nil {
		return nil, err
	}
	if !morador.Ativo {
		return nil, gorm.ErrRecordNotFound
	}

	config, err := s.configRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get association configuration: %w", err)
	}

	consumos, err := s.billingSvc.GetConsumosByMorador(morador.ID)
	if err != nil {
		return nil, err
	}

	return &response.MoradorPortalResponse{
		MoradorID:      morador.ID,
		NumeroChacara:  morador.NumeroChacara,
		Nome:           morador.Nome,
		TemHidrometro:  morador.TemHidrometro,
		ChavePix:       config.ChavePix,
		NomeAssociacao: config.NomeAssociacao,
		Consumos:       consumos,
	}, nil
}
