package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"agua-be-svc/internal/models"
)

// ConsumoRepository defines the interface for consumption-record data operations
type ConsumoRepository interface {
	GetByID(id uint) (*models.Consumo, error)
	GetByPeriodo(periodoID uint) ([]*models.Consumo, error)
	GetByMorador(moradorID uint) ([]*models.Consumo, error)
	GetByPeriodoAndMorador(periodoID uint, moradorID uint) (*models.Consumo, error)
	SaveRecalculation(ctx context.Context, periodoID uint, totalConsumo decimal.Decimal, consumos []*models.Consumo) error
}

// consumoRepository implements ConsumoRepository
type consumoRepository struct {
	db *gorm.DB
}

// NewConsumoRepository creates a new instance of ConsumoRepository
func NewConsumoRepository(db *gorm.DB) ConsumoRepository {
	return &consumoRepository{
		db: db,
	}
}

// GetByID retrieves a consumption record with its resident and period
func (r *consumoRepository) GetByID(id uint) (*models.Consumo, error) {
	var consumo models.Consumo

	err := r.db.Preload("Morador").Preload("Periodo").Where("id = ?", id).First(&consumo).Error
	if err != nil {
		return nil, err
	}

	return &consumo, nil
}

// GetByPeriodo retrieves all consumption records of a period with residents
// preloaded, ordered by chácara number
func (r *consumoRepository) GetByPeriodo(periodoID uint) ([]*models.Consumo, error) {
	var consumos []*models.Consumo

	err := r.db.Preload("Morador").
		Joins("JOIN moradores ON moradores.id = consumos.morador_id").
		Where("consumos.periodo_id = ?", periodoID).
		Order("moradores.numero_chacara").
		Find(&consumos).Error
	if err != nil {
		return nil, err
	}

	return consumos, nil
}

// GetByMorador retrieves a resident's consumption history, newest period first
func (r *consumoRepository) GetByMorador(moradorID uint) ([]*models.Consumo, error) {
	var consumos []*models.Consumo

	err := r.db.Preload("Periodo").
		Joins("JOIN periodos ON periodos.id = consumos.periodo_id").
		Where("consumos.morador_id = ?", moradorID).
		Order("periodos.ano DESC, periodos.mes DESC").
		Find(&consumos).Error
	if err != nil {
		return nil, err
	}

	return consumos, nil
}

// GetByPeriodoAndMorador retrieves the single consumption record for a
// (period, resident) pair
func (r *consumoRepository) GetByPeriodoAndMorador(periodoID uint, moradorID uint) (*models.Consumo, error) {
	var consumo models.Consumo

	err := r.db.Where("periodo_id = ? AND morador_id = ?", periodoID, moradorID).First(&consumo).Error
	if err != nil {
		return nil, err
	}

	return &consumo, nil
}

// SaveRecalculation persists a full period recompute atomically: the period's
// total consumption and one upserted consumption row per resident. Any write
// failure rolls back the whole recompute, so a period is never left with a mix
// of stale and recalculated charges.
func (r *consumoRepository) SaveRecalculation(ctx context.Context, periodoID uint, totalConsumo decimal.Decimal, consumos []*models.Consumo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Periodo{}).Where("id = ?", periodoID).
			Update("total_consumo", totalConsumo).Error; err != nil {
			return fmt.Errorf("failed to update period total consumption: %w", err)
		}

		for _, consumo := range consumos {
			var existing models.Consumo
			err := tx.Where("periodo_id = ? AND morador_id = ?", periodoID, consumo.MoradorID).
				First(&existing).Error

			switch {
			case err == nil:
				updates := map[string]interface{}{
					"consumo_m3":      consumo.ConsumoM3,
					"valor_calculado": consumo.ValorCalculado,
					"despesa_extra":   consumo.DespesaExtra,
				}
				if err := tx.Model(&existing).Updates(updates).Error; err != nil {
					return fmt.Errorf("failed to update consumption for morador %d: %w", consumo.MoradorID, err)
				}
				consumo.ID = existing.ID
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(consumo).Error; err != nil {
					return fmt.Errorf("failed to create consumption for morador %d: %w", consumo.MoradorID, err)
				}
			default:
				return fmt.Errorf("failed to load consumption for morador %d: %w", consumo.MoradorID, err)
			}
		}

		return nil
	})
}
