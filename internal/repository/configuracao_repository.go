package repository

import (
	"gorm.io/gorm"

	"agua-be-svc/internal/models"
)

// ConfiguracaoRepository defines the interface for tariff-configuration data
// operations
type ConfiguracaoRepository interface {
	GetActive() (*models.Configuracao, error)
	Save(config *models.Configuracao) error
}

// configuracaoRepository implements ConfiguracaoRepository
type configuracaoRepository struct {
	db *gorm.DB
}

// NewConfiguracaoRepository creates a new instance of ConfiguracaoRepository
func NewConfiguracaoRepository(db *gorm.DB) ConfiguracaoRepository {
	return &configuracaoRepository{
		db: db,
	}
}

// GetActive retrieves the most recently updated configuration row. Every
// recompute bills with this schedule, including recomputes of old periods.
func (r *configuracaoRepository) GetActive() (*models.Configuracao, error) {
	var config models.Configuracao

	err := r.db.Order("updated_at DESC").First(&config).Error
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// Save persists the configuration, creating the row when none exists
func (r *configuracaoRepository) Save(config *models.Configuracao) error {
	return r.db.Save(config).Error
}
