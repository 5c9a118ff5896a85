package tariff

import (
	"github.com/shopspring/decimal"

	"agua-be-svc/internal/models"
)

// TotalDespesas sums the four expense components of a period
func TotalDespesas(periodo *models.Periodo) decimal.Decimal {
	return periodo.DespesaEnergia.
		Add(periodo.DespesaOutros).
		Add(periodo.DespesaServicoCobranca).
		Add(periodo.DespesaExtraTotal)
}

// ValorM3 derives the system-wide price per m³ for a period: total expenses
// divided by the metered consumption of all residents. Returns exactly zero
// when total consumption is zero, so a period without readings yields no
// variable charge instead of a division error.
func ValorM3(periodo *models.Periodo, totalConsumo decimal.Decimal) decimal.Decimal {
	if totalConsumo.IsZero() {
		return decimal.Zero
	}
	return TotalDespesas(periodo).Div(totalConsumo)
}
