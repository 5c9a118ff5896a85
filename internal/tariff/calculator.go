// Package tariff implements the progressive water-tariff schedule used to
// bill each chácara: a base price per m³ derived from the period's expenses,
// two surcharge bands above the normal band, a flat association fee and a
// minimum fee for zero consumption.
package tariff

import (
	"fmt"

	"github.com/shopspring/decimal"

	"agua-be-svc/internal/models"
)

var (
	um  = decimal.NewFromInt(1)
	cem = decimal.NewFromInt(100)
)

// Detalhamento is the full breakdown of one resident's water bill
type Detalhamento struct {
	ConsumoM3            decimal.Decimal  `json:"consumo_m3"`
	ValorFaixaNormal     decimal.Decimal  `json:"valor_faixa_normal"`
	ValorFaixaExcedente1 decimal.Decimal  `json:"valor_faixa_excedente_1"`
	ValorFaixaExcedente2 decimal.Decimal  `json:"valor_faixa_excedente_2"`
	ValorBase            decimal.Decimal  `json:"valor_base"`
	TaxaAssociado        decimal.Decimal  `json:"taxa_associado"`
	TaxaMinima           *decimal.Decimal `json:"taxa_minima,omitempty"`
	DespesaExtra         decimal.Decimal  `json:"despesa_extra"`
	Subtotal             decimal.Decimal  `json:"subtotal"`
	ValorTotal           decimal.Decimal  `json:"valor_total"`
	Descricao            []string         `json:"descricao"`
}

// multiplicador converts a surcharge percentage into a price multiplier
// (30 -> 1.30)
func multiplicador(percentual decimal.Decimal) decimal.Decimal {
	return um.Add(percentual.Div(cem))
}

// Calculate computes one resident's bill for the given consumption and the
// period's derived price per m³.
//
// Band boundaries are inclusive on the lower band: consumption exactly at
// faixa_normal_ate stays entirely in the normal band, and consumption exactly
// at faixa_excedente_1_ate stays entirely in the first surcharge band.
//
// When consumption is zero the variable charge collapses to the minimum fee
// (metered or unmetered, per the resident), and the breakdown's subtotal is
// that minimum fee rather than a band sum; downstream totals rely on this.
func Calculate(consumoM3, valorM3 decimal.Decimal, temHidrometro bool, cfg *models.Configuracao, despesaExtra decimal.Decimal) *Detalhamento {
	var descricao []string

	if consumoM3.IsZero() {
		taxaMinima := cfg.TaxaMinimaSemHidrometro
		rotulo := "(sem hidrômetro)"
		if temHidrometro {
			taxaMinima = cfg.TaxaMinimaComHidrometro
			rotulo = "(com hidrômetro)"
		}

		valorTotal := taxaMinima.Add(cfg.TaxaAssociado).Add(despesaExtra)

		descricao = append(descricao,
			fmt.Sprintf("Consumo zero - Taxa mínima %s: R$ %s", rotulo, taxaMinima.StringFixed(2)),
			fmt.Sprintf("Taxa de Associado: R$ %s", cfg.TaxaAssociado.StringFixed(2)),
		)
		if despesaExtra.IsPositive() {
			descricao = append(descricao, fmt.Sprintf("Despesa Extra: R$ %s", despesaExtra.StringFixed(2)))
		}

		return &Detalhamento{
			ConsumoM3:            decimal.Zero,
			ValorFaixaNormal:     decimal.Zero,
			ValorFaixaExcedente1: decimal.Zero,
			ValorFaixaExcedente2: decimal.Zero,
			ValorBase:            decimal.Zero,
			TaxaAssociado:        cfg.TaxaAssociado,
			TaxaMinima:           &taxaMinima,
			DespesaExtra:         despesaExtra,
			Subtotal:             taxaMinima,
			ValorTotal:           valorTotal,
			Descricao:            descricao,
		}
	}

	faixaNormalAte := decimal.NewFromInt(int64(cfg.FaixaNormalAte))
	faixaExcedente1Ate := decimal.NewFromInt(int64(cfg.FaixaExcedente1Ate))

	valorFaixaNormal := decimal.Zero
	valorFaixaExcedente1 := decimal.Zero
	valorFaixaExcedente2 := decimal.Zero

	if consumoM3.LessThanOrEqual(faixaNormalAte) {
		valorFaixaNormal = consumoM3.Mul(valorM3)
		descricao = append(descricao, fmt.Sprintf("Faixa Normal (0 a %d m³): %s × R$ %s = R$ %s",
			cfg.FaixaNormalAte, consumoM3.StringFixed(2), valorM3.StringFixed(2), valorFaixaNormal.StringFixed(2)))
	} else {
		// the full normal allotment is billed at the base price
		valorFaixaNormal = faixaNormalAte.Mul(valorM3)
		descricao = append(descricao, fmt.Sprintf("Faixa Normal (0 a %d m³): %d × R$ %s = R$ %s",
			cfg.FaixaNormalAte, cfg.FaixaNormalAte, valorM3.StringFixed(2), valorFaixaNormal.StringFixed(2)))

		percentual1 := multiplicador(cfg.FaixaExcedente1Percent)

		if consumoM3.LessThanOrEqual(faixaExcedente1Ate) {
			excedente1 := consumoM3.Sub(faixaNormalAte)
			valorFaixaExcedente1 = excedente1.Mul(valorM3).Mul(percentual1)
			descricao = append(descricao,
				fmt.Sprintf("1ª Faixa Excedente (%d a %d m³):", cfg.FaixaNormalAte, cfg.FaixaExcedente1Ate),
				fmt.Sprintf("  %s × R$ %s × %s (+%s%%) = R$ %s",
					excedente1.StringFixed(2), valorM3.StringFixed(2), percentual1.StringFixed(2),
					cfg.FaixaExcedente1Percent.String(), valorFaixaExcedente1.StringFixed(2)),
			)
		} else {
			// band one is fully consumed at the first surcharge rate
			excedente1 := faixaExcedente1Ate.Sub(faixaNormalAte)
			valorFaixaExcedente1 = excedente1.Mul(valorM3).Mul(percentual1)
			descricao = append(descricao,
				fmt.Sprintf("1ª Faixa Excedente (%d a %d m³):", cfg.FaixaNormalAte, cfg.FaixaExcedente1Ate),
				fmt.Sprintf("  %s × R$ %s × %s (+%s%%) = R$ %s",
					excedente1.String(), valorM3.StringFixed(2), percentual1.StringFixed(2),
					cfg.FaixaExcedente1Percent.String(), valorFaixaExcedente1.StringFixed(2)),
			)

			percentual2 := multiplicador(cfg.FaixaExcedente2Percent)
			excedente2 := consumoM3.Sub(faixaExcedente1Ate)
			valorFaixaExcedente2 = excedente2.Mul(valorM3).Mul(percentual2)
			descricao = append(descricao,
				fmt.Sprintf("2ª Faixa Excedente (acima de %d m³):", cfg.FaixaExcedente1Ate),
				fmt.Sprintf("  %s × R$ %s × %s (+%s%%) = R$ %s",
					excedente2.StringFixed(2), valorM3.StringFixed(2), percentual2.StringFixed(2),
					cfg.FaixaExcedente2Percent.String(), valorFaixaExcedente2.StringFixed(2)),
			)
		}
	}

	valorBase := valorFaixaNormal.Add(valorFaixaExcedente1).Add(valorFaixaExcedente2)
	subtotal := valorBase

	descricao = append(descricao,
		fmt.Sprintf("Subtotal Consumo: R$ %s", subtotal.StringFixed(2)),
		fmt.Sprintf("Taxa de Associado: R$ %s", cfg.TaxaAssociado.StringFixed(2)),
	)
	if despesaExtra.IsPositive() {
		descricao = append(descricao, fmt.Sprintf("Despesa Extra: R$ %s", despesaExtra.StringFixed(2)))
	}

	valorTotal := subtotal.Add(cfg.TaxaAssociado).Add(despesaExtra)

	return &Detalhamento{
		ConsumoM3:            consumoM3,
		ValorFaixaNormal:     valorFaixaNormal,
		ValorFaixaExcedente1: valorFaixaExcedente1,
		ValorFaixaExcedente2: valorFaixaExcedente2,
		ValorBase:            valorBase,
		TaxaAssociado:        cfg.TaxaAssociado,
		DespesaExtra:         despesaExtra,
		Subtotal:             subtotal,
		ValorTotal:           valorTotal,
		Descricao:            descricao,
	}
}
