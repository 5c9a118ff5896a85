package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Periodo represents the periodos table (one row per monthly billing cycle)
type Periodo struct {
	ID                     uint            `json:"id" gorm:"primarykey"`
	Mes                    int             `json:"mes" gorm:"column:mes;not null;uniqueIndex:idx_periodos_mes_ano"`
	Ano                    int             `json:"ano" gorm:"column:ano;not null;uniqueIndex:idx_periodos_mes_ano"`
	ValorTotal             decimal.Decimal `json:"valor_total" gorm:"column:valor_total;type:decimal(18,4);not null"`
	TotalConsumo           decimal.Decimal `json:"total_consumo" gorm:"column:total_consumo;type:decimal(18,4);not null"`
	Fechado                bool            `json:"fechado" gorm:"column:fechado;default:false"`
	DespesaEnergia         decimal.Decimal `json:"despesa_energia" gorm:"column:despesa_energia;type:decimal(18,4);not null"`
	DespesaOutros          decimal.Decimal `json:"despesa_outros" gorm:"column:despesa_outros;type:decimal(18,4);not null"`
	DespesaServicoCobranca decimal.Decimal `json:"despesa_servico_cobranca" gorm:"column:despesa_servico_cobranca;type:decimal(18,4);not null"`
	DespesaExtraTotal      decimal.Decimal `json:"despesa_extra_total" gorm:"column:despesa_extra_total;type:decimal(18,4);not null"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// TableName sets the insert table name for Periodo
func (Periodo) TableName() string {
	return "periodos"
}

var nomesMeses = map[int]string{
	1: "Janeiro", 2: "Fevereiro", 3: "Março", 4: "Abril",
	5: "Maio", 6: "Junho", 7: "Julho", 8: "Agosto",
	9: "Setembro", 10: "Outubro", 11: "Novembro", 12: "Dezembro",
}

// NomeMes returns the Portuguese month name, or an empty string for
// out-of-range values
func NomeMes(mes int) string {
	return nomesMeses[mes]
}
