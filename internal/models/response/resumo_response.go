package response

import (
	"github.com/shopspring/decimal"
)

// ResumoPeriodoResponse aggregates billing state for one period
type ResumoPeriodoResponse struct {
	PeriodoID            uint            `json:"periodo_id"`
	Mes                  int             `json:"mes"`
	MesNome              string          `json:"mes_nome"`
	Ano                  int             `json:"ano"`
	Fechado              bool            `json:"fechado"`
	TotalDespesas        decimal.Decimal `json:"total_despesas"`
	TotalConsumo         decimal.Decimal `json:"total_consumo"`
	ValorM3              decimal.Decimal `json:"valor_m3"`
	TotalFaturado        decimal.Decimal `json:"total_faturado"`
	TotalRecebido        decimal.Decimal `json:"total_recebido"`
	TotalPendente        decimal.Decimal `json:"total_pendente"`
	MoradoresCobrados    int64           `json:"moradores_cobrados"`
	PagamentosPendentes  int64           `json:"pagamentos_pendentes"`
	PagamentosAprovados  int64           `json:"pagamentos_aprovados"`
	PagamentosRejeitados int64           `json:"pagamentos_rejeitados"`
	SemPagamento         int64           `json:"sem_pagamento"`
}

// CobrancaWhatsAppResponse carries the generated charge-message deep link
type CobrancaWhatsAppResponse struct {
	MoradorID uint   `json:"morador_id"`
	Telefone  string `json:"telefone"`
	Mensagem  string `json:"mensagem"`
	URL       string `json:"url"`
	JaEnviado bool   `json:"ja_enviado"`
}
