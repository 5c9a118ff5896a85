package repository

import (
	"strings"

	"gorm.io/gorm"

	"agua-be-svc/internal/models"
)

// MoradorRepository defines the interface for resident data operations
type MoradorRepository interface {
	GetAll(search string, page int, limit int) ([]*models.Morador, int64, error)
	GetAtivos() ([]*models.Morador, error)
	GetByID(id uint) (*models.Morador, error)
	GetByNumeroChacara(numeroChacara string) (*models.Morador, error)
	Create(morador *models.Morador) error
	Update(morador *models.Morador) error
}

// moradorRepository implements MoradorRepository
type moradorRepository struct {
	db *gorm.DB
}

// NewMoradorRepository creates a new instance of MoradorRepository
func NewMoradorRepository(db *gorm.DB) MoradorRepository {
	return &moradorRepository{
		db: db,
	}
}

// GetAll retrieves residents with pagination and optional search by name or
// chácara number
func (r *moradorRepository) GetAll(search string, page int, limit int) ([]*models.Morador, int64, error) {
	var moradores []*models.Morador
	var total int64

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	query := r.db.Model(&models.Morador{})
	if strings.TrimSpace(search) != "" {
		like := "%" + strings.TrimSpace(search) + "%"
		query = query.Where("nome ILIKE ? OR numero_chacara ILIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("numero_chacara").Limit(limit).Offset(offset).Find(&moradores).Error
	if err != nil {
		return nil, 0, err
	}

	return moradores, total, nil
}

// GetAtivos retrieves all active residents ordered by chácara number
func (r *moradorRepository) GetAtivos() ([]*models.Morador, error) {
	var moradores []*models.Morador

	err := r.db.Where("ativo = ?", true).Order("numero_chacara").Find(&moradores).Error
	if err != nil {
		return nil, err
	}

	return moradores, nil
}

// GetByID retrieves a resident by ID
func (r *moradorRepository) GetByID(id uint) (*models.Morador, error) {
	var morador models.Morador

	err := r.db.Where("id = ?", id).First(&morador).Error
	if err != nil {
		return nil, err
	}

	return &morador, nil
}

// GetByNumeroChacara retrieves a resident by the unique chácara number
func (r *moradorRepository) GetByNumeroChacara(numeroChacara string) (*models.Morador, error) {
	var morador models.Morador

	err := r.db.Where("numero_chacara = ?", numeroChacara).First(&morador).Error
	if err != nil {
		return nil, err
	}

	return &morador, nil
}

// Create creates a new resident record
func (r *moradorRepository) Create(morador *models.Morador) error {
	return r.db.Create(morador).Error
}

// Update saves changes to an existing resident record
func (r *moradorRepository) Update(morador *models.Morador) error {
	return r.db.Save(morador).Error
}
