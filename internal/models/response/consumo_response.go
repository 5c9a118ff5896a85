package response

import (
	"github.com/shopspring/decimal"
)

// Payment display status for a consumption row when no payment exists yet
const StatusSemPagamento = "sem_pagamento"

// ConsumoDetalheResponse is one billed consumption row with its calculation
// breakdown and current payment status
type ConsumoDetalheResponse struct {
	ConsumoID       uint            `json:"consumo_id"`
	PeriodoID       uint            `json:"periodo_id"`
	MoradorID       uint            `json:"morador_id"`
	NumeroChacara   string          `json:"numero_chacara"`
	NomeMorador     string          `json:"nome_morador"`
	Telefone        string          `json:"telefone,omitempty"`
	Mes             int             `json:"mes"`
	MesNome         string          `json:"mes_nome"`
	Ano             int             `json:"ano"`
	ConsumoM3       decimal.Decimal `json:"consumo_m3"`
	ValorCalculado  decimal.Decimal `json:"valor_calculado"`
	DespesaExtra    decimal.Decimal `json:"despesa_extra"`
	StatusPagamento string          `json:"status_pagamento"`
	Descricao       []string        `json:"descricao,omitempty"`
}

// MoradorPortalResponse is the resident-facing payload after a chácara lookup
type MoradorPortalResponse struct {
	MoradorID      uint                      `json:"morador_id"`
	NumeroChacara  string                    `json:"numero_chacara"`
	Nome           string                    `json:"nome"`
	TemHidrometro  bool                      `json:"tem_hidrometro"`
	ChavePix       string                    `json:"chave_pix"`
	NomeAssociacao string                    `json:"nome_associacao"`
	Consumos       []*ConsumoDetalheResponse `json:"consumos"`
}
