package models

import (
	"time"
)

// CobrancaEnvio represents the cobranca_envios table. One row per
// (periodo, morador) records that a charge message was already generated,
// so the dedupe survives multiple admins and devices.
type CobrancaEnvio struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	PeriodoID uint      `json:"periodo_id" gorm:"column:periodo_id;not null;uniqueIndex:idx_cobranca_envios_periodo_morador"`
	MoradorID uint      `json:"morador_id" gorm:"column:morador_id;not null;uniqueIndex:idx_cobranca_envios_periodo_morador"`
	EnviadoEm time.Time `json:"enviado_em" gorm:"column:enviado_em;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the insert table name for CobrancaEnvio
func (CobrancaEnvio) TableName() string {
	return "cobranca_envios"
}
