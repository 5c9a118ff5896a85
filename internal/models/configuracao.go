package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Configuracao represents the configuracoes table. The most recently updated
// published row is the active tariff schedule; every field is mandatory and
// validated before it is used in a calculation.
type Configuracao struct {
	ID                       uint            `json:"id" gorm:"primarykey"`
	ChavePix                 string          `json:"chave_pix" gorm:"column:chave_pix;not null"`
	NomeAssociacao           string          `json:"nome_associacao" gorm:"column:nome_associacao;not null"`
	TelefoneContato          string          `json:"telefone_contato" gorm:"column:telefone_contato"`
	MensagemCobrancaTemplate string          `json:"mensagem_cobranca_template" gorm:"column:mensagem_cobranca_template"`
	TaxaMinimaComHidrometro  decimal.Decimal `json:"taxa_minima_com_hidrometro" gorm:"column:taxa_minima_com_hidrometro;type:decimal(18,4);not null"`
	TaxaMinimaSemHidrometro  decimal.Decimal `json:"taxa_minima_sem_hidrometro" gorm:"column:taxa_minima_sem_hidrometro;type:decimal(18,4);not null"`
	TaxaAssociado            decimal.Decimal `json:"taxa_associado" gorm:"column:taxa_associado;type:decimal(18,4);not null"`
	PercentualMultaAtraso    decimal.Decimal `json:"percentual_multa_atraso" gorm:"column:percentual_multa_atraso;type:decimal(18,4);not null"`
	FaixaNormalAte           int             `json:"faixa_normal_ate" gorm:"column:faixa_normal_ate;not null"`
	FaixaExcedente1Ate       int             `json:"faixa_excedente_1_ate" gorm:"column:faixa_excedente_1_ate;not null"`
	FaixaExcedente1Percent   decimal.Decimal `json:"faixa_excedente_1_percentual" gorm:"column:faixa_excedente_1_percentual;type:decimal(18,4);not null"`
	FaixaExcedente2Percent   decimal.Decimal `json:"faixa_excedente_2_percentual" gorm:"column:faixa_excedente_2_percentual;type:decimal(18,4);not null"`
	CreatedAt                time.Time       `json:"created_at"`
	UpdatedAt                time.Time       `json:"updated_at"`
}

// TableName sets the insert table name for Configuracao
func (Configuracao) TableName() string {
	return "configuracoes"
}
