package repository

import (
	"gorm.io/gorm"

	"agua-be-svc/internal/models"
)

// PeriodoRepository defines the interface for billing-period data operations
type PeriodoRepository interface {
	GetAll() ([]*models.Periodo, error)
	GetByID(id uint) (*models.Periodo, error)
	GetByMesAno(mes int, ano int) (*models.Periodo, error)
	Create(periodo *models.Periodo) error
	Update(periodo *models.Periodo) error
	SetFechado(id uint, fechado bool) error
}

// periodoRepository implements PeriodoRepository
type periodoRepository struct {
	db *gorm.DB
}

// NewPeriodoRepository creates a new instance of PeriodoRepository
func NewPeriodoRepository(db *gorm.DB) PeriodoRepository {
	return &periodoRepository{
		db: db,
	}
}

// GetAll retrieves all periods, newest first
func (r *periodoRepository) GetAll() ([]*models.Periodo, error) {
	var periodos []*models.Periodo

	err := r.db.Order("ano DESC, mes DESC").Find(&periodos).Error
	if err != nil {
		return nil, err
	}

	return periodos, nil
}

// GetByID retrieves a period by ID
func (r *periodoRepository) GetByID(id uint) (*models.Periodo, error) {
	var periodo models.Periodo

	err := r.db.Where("id = ?", id).First(&periodo).Error
	if err != nil {
		return nil, err
	}

	return &periodo, nil
}

// GetByMesAno retrieves the period for a given month and year
func (r *periodoRepository) GetByMesAno(mes int, ano int) (*models.Periodo, error) {
	var periodo models.Periodo

	err := r.db.Where("mes = ? AND ano = ?", mes, ano).First(&periodo).Error
	if err != nil {
		return nil, err
	}

	return &periodo, nil
}

// Create creates a new period record
func (r *periodoRepository) Create(periodo *models.Periodo) error {
	return r.db.Create(periodo).Error
}

// Update persists changes to an existing period record
func (r *periodoRepository) Update(periodo *models.Periodo) error {
	return r.db.Save(periodo).Error
}

// SetFechado updates the closed flag of a period
func (r *periodoRepository) SetFechado(id uint, fechado bool) error {
	return r.db.Model(&models.Periodo{}).Where("id = ?", id).Update("fechado", fechado).Error
}
