package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment statuses. The portal never verifies PIX receipt; a payment row is a
// resident-asserted claim that stays pendente until an admin decides it.
const (
	PagamentoStatusPendente  = "pendente"
	PagamentoStatusAprovado  = "aprovado"
	PagamentoStatusRejeitado = "rejeitado"
)

// Pagamento represents the pagamentos table
type Pagamento struct {
	ID            uint            `json:"id" gorm:"primarykey"`
	Referencia    string          `json:"referencia" gorm:"column:referencia;uniqueIndex;not null"`
	ConsumoID     uint            `json:"consumo_id" gorm:"column:consumo_id;not null"`
	MoradorID     uint            `json:"morador_id" gorm:"column:morador_id;not null"`
	PeriodoID     uint            `json:"periodo_id" gorm:"column:periodo_id;not null"`
	Valor         decimal.Decimal `json:"valor" gorm:"column:valor;type:decimal(18,4);not null"`
	DataPagamento time.Time       `json:"data_pagamento" gorm:"column:data_pagamento;not null"`
	Comprovante   *string         `json:"comprovante" gorm:"column:comprovante"`
	Status        string          `json:"status" gorm:"column:status;not null;default:pendente"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Morador *Morador `json:"morador,omitempty" gorm:"foreignKey:MoradorID"`
	Periodo *Periodo `json:"periodo,omitempty" gorm:"foreignKey:PeriodoID"`
}

// TableName sets the insert table name for Pagamento
func (Pagamento) TableName() string {
	return "pagamentos"
}
