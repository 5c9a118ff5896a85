package repository

import (
	"gorm.io/gorm"

	"agua-be-svc/internal/models"
)

// CobrancaEnvioRepository defines the interface for charge-message send
// tracking, keyed by (periodo, morador)
type CobrancaEnvioRepository interface {
	Register(envio *models.CobrancaEnvio) error
	GetByPeriodo(periodoID uint) ([]*models.CobrancaEnvio, error)
}

// cobrancaEnvioRepository implements CobrancaEnvioRepository
type cobrancaEnvioRepository struct {
	db *gorm.DB
}

// NewCobrancaEnvioRepository creates a new instance of CobrancaEnvioRepository
func NewCobrancaEnvioRepository(db *gorm.DB) CobrancaEnvioRepository {
	return &cobrancaEnvioRepository{
		db: db,
	}
}

// Register records a send; repeats for the same pair only refresh enviado_em
func (r *cobrancaEnvioRepository) Register(envio *models.CobrancaEnvio) error {
	return r.db.
		Where("periodo_id = ? AND morador_id = ?", envio.PeriodoID, envio.MoradorID).
		Assign(map[string]interface{}{"enviado_em": envio.EnviadoEm}).
		FirstOrCreate(envio).Error
}

// GetByPeriodo lists the sends registered for a period
func (r *cobrancaEnvioRepository) GetByPeriodo(periodoID uint) ([]*models.CobrancaEnvio, error) {
	var envios []*models.CobrancaEnvio

	err := r.db.Where("periodo_id = ?", periodoID).Order("enviado_em DESC").Find(&envios).Error
	if err != nil {
		return nil, err
	}

	return envios, nil
}
