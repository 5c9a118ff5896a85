package repository

import (
	"gorm.io/gorm"

	"agua-be-svc/internal/models/response"
)

// ResumoRepository defines the interface for period billing summaries
type ResumoRepository interface {
	GetResumoPeriodo(periodoID uint) (*response.ResumoPeriodoResponse, error)
}

// resumoRepository implements ResumoRepository
type resumoRepository struct {
	db *gorm.DB
}

// NewResumoRepository creates a new instance of ResumoRepository
func NewResumoRepository(db *gorm.DB) ResumoRepository {
	return &resumoRepository{
		db: db,
	}
}

// GetResumoPeriodo aggregates billed totals and payment states for a period.
// A consumption's effective status is the strongest of its payment attempts:
// aprovado wins over pendente, pendente over rejeitado.
func (r *resumoRepository) GetResumoPeriodo(periodoID uint) (*response.ResumoPeriodoResponse, error) {
	resumo := &response.ResumoPeriodoResponse{PeriodoID: periodoID}

	query := `
		SELECT
			COUNT(c.id) AS moradores_cobrados,
			COALESCE(SUM(c.valor_calculado), 0) AS total_faturado,
			COALESCE(SUM(CASE WHEN pg.status = 'aprovado' THEN c.valor_calculado ELSE 0 END), 0) AS total_recebido,
			COALESCE(SUM(CASE WHEN pg.status = 'aprovado' THEN 0 ELSE c.valor_calculado END), 0) AS total_pendente,
			COUNT(c.id) FILTER (WHERE pg.status = 'pendente') AS pagamentos_pendentes,
			COUNT(c.id) FILTER (WHERE pg.status = 'aprovado') AS pagamentos_aprovados,
			COUNT(c.id) FILTER (WHERE pg.status = 'rejeitado') AS pagamentos_rejeitados,
			COUNT(c.id) FILTER (WHERE pg.status IS NULL) AS sem_pagamento
		FROM consumos c
		LEFT JOIN LATERAL (
			SELECT CASE
				WHEN bool_or(p.status = 'aprovado') THEN 'aprovado'
				WHEN bool_or(p.status = 'pendente') THEN 'pendente'
				WHEN bool_or(p.status = 'rejeitado') THEN 'rejeitado'
			END AS status
			FROM pagamentos p
			WHERE p.consumo_id = c.id
		) pg ON true
		WHERE c.periodo_id = ?
	`

	err := r.db.Raw(query, periodoID).Row().Scan(
		&resumo.MoradoresCobrados,
		&resumo.TotalFaturado,
		&resumo.TotalRecebido,
		&resumo.TotalPendente,
		&resumo.PagamentosPendentes,
		&resumo.PagamentosAprovados,
		&resumo.PagamentosRejeitados,
		&resumo.SemPagamento,
	)
	if err != nil {
		return nil, err
	}

	return resumo, nil
}
