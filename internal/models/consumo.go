package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Consumo represents the consumos table. There is exactly one row per
// (periodo, morador) pair; recalculation updates the row in place.
type Consumo struct {
	ID             uint            `json:"id" gorm:"primarykey"`
	PeriodoID      uint            `json:"periodo_id" gorm:"column:periodo_id;not null;uniqueIndex:idx_consumos_periodo_morador"`
	MoradorID      uint            `json:"morador_id" gorm:"column:morador_id;not null;uniqueIndex:idx_consumos_periodo_morador"`
	ConsumoM3      decimal.Decimal `json:"consumo_m3" gorm:"column:consumo_m3;type:decimal(18,4);not null"`
	ValorCalculado decimal.Decimal `json:"valor_calculado" gorm:"column:valor_calculado;type:decimal(18,4);not null"`
	DespesaExtra   decimal.Decimal `json:"despesa_extra" gorm:"column:despesa_extra;type:decimal(18,4);not null"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	Morador *Morador `json:"morador,omitempty" gorm:"foreignKey:MoradorID"`
	Periodo *Periodo `json:"periodo,omitempty" gorm:"foreignKey:PeriodoID"`
}

// TableName sets the insert table name for Consumo
func (Consumo) TableName() string {
	return "consumos"
}
