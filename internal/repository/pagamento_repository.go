package repository

import (
	"gorm.io/gorm"

	"agua-be-svc/internal/models"
)

// PagamentoRepository defines the interface for payment data operations
type PagamentoRepository interface {
	Create(pagamento *models.Pagamento) error
	GetByID(id uint) (*models.Pagamento, error)
	GetByPeriodo(periodoID uint) ([]*models.Pagamento, error)
	GetByConsumo(consumoID uint) ([]*models.Pagamento, error)
	UpdateStatus(id uint, status string) error
}

// pagamentoRepository implements PagamentoRepository
type pagamentoRepository struct {
	db *gorm.DB
}

// NewPagamentoRepository creates a new instance of PagamentoRepository
func NewPagamentoRepository(db *gorm.DB) PagamentoRepository {
	return &pagamentoRepository{
		db: db,
	}
}

// Create creates a new payment claim
func (r *pagamentoRepository) Create(pagamento *models.Pagamento) error {
	return r.db.Create(pagamento).Error
}

// GetByID retrieves a payment with its resident preloaded
func (r *pagamentoRepository) GetByID(id uint) (*models.Pagamento, error) {
	var pagamento models.Pagamento

	err := r.db.Preload("Morador").Where("id = ?", id).First(&pagamento).Error
	if err != nil {
		return nil, err
	}

	return &pagamento, nil
}

// GetByPeriodo retrieves all payments of a period, newest first
func (r *pagamentoRepository) GetByPeriodo(periodoID uint) ([]*models.Pagamento, error) {
	var pagamentos []*models.Pagamento

	err := r.db.Preload("Morador").
		Where("periodo_id = ?", periodoID).
		Order("created_at DESC").
		Find(&pagamentos).Error
	if err != nil {
		return nil, err
	}

	return pagamentos, nil
}

// GetByConsumo retrieves every payment attempt for a consumption record,
// newest first (a rejected claim may be followed by a new one)
func (r *pagamentoRepository) GetByConsumo(consumoID uint) ([]*models.Pagamento, error) {
	var pagamentos []*models.Pagamento

	err := r.db.Where("consumo_id = ?", consumoID).Order("created_at DESC").Find(&pagamentos).Error
	if err != nil {
		return nil, err
	}

	return pagamentos, nil
}

// UpdateStatus sets the status of a payment
func (r *pagamentoRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Pagamento{}).Where("id = ?", id).Update("status", status).Error
}
