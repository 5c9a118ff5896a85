package tariff

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agua-be-svc/internal/models"
)

// testConfig mirrors the association's default schedule: minimum fees of
// R$ 10 (metered) and R$ 50 (unmetered), R$ 8 association fee, normal band up
// to 30 m³, first surcharge band up to 50 m³ at +30%, +60% above that.
func testConfig() *models.Configuracao {
	return &models.Configuracao{
		ChavePix:                "associacao@example.com",
		NomeAssociacao:          "AMCRS",
		TaxaMinimaComHidrometro: decimal.RequireFromString("10.00"),
		TaxaMinimaSemHidrometro: decimal.RequireFromString("50.00"),
		TaxaAssociado:           decimal.RequireFromString("8.00"),
		PercentualMultaAtraso:   decimal.RequireFromString("2.00"),
		FaixaNormalAte:          30,
		FaixaExcedente1Ate:      50,
		FaixaExcedente1Percent:  decimal.RequireFromString("30.00"),
		FaixaExcedente2Percent:  decimal.RequireFromString("60.00"),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateZeroConsumption(t *testing.T) {
	cfg := testConfig()

	t.Run("com hidrometro", func(t *testing.T) {
		d := Calculate(decimal.Zero, dec("4.08"), true, cfg, decimal.Zero)

		require.NotNil(t, d.TaxaMinima)
		assert.True(t, d.TaxaMinima.Equal(dec("10.00")))
		assert.True(t, d.ValorFaixaNormal.IsZero())
		assert.True(t, d.ValorFaixaExcedente1.IsZero())
		assert.True(t, d.ValorFaixaExcedente2.IsZero())
		// under zero consumption the subtotal collapses to the minimum fee
		assert.True(t, d.Subtotal.Equal(dec("10.00")))
		assert.True(t, d.ValorTotal.Equal(dec("18.00")))
	})

	t.Run("sem hidrometro", func(t *testing.T) {
		d := Calculate(decimal.Zero, dec("4.08"), false, cfg, decimal.Zero)

		require.NotNil(t, d.TaxaMinima)
		assert.True(t, d.TaxaMinima.Equal(dec("50.00")))
		assert.True(t, d.Subtotal.Equal(dec("50.00")))
		assert.True(t, d.ValorTotal.Equal(dec("58.00")))
	})

	t.Run("despesa extra somada ao total", func(t *testing.T) {
		d := Calculate(decimal.Zero, decimal.Zero, true, cfg, dec("12.50"))

		assert.True(t, d.ValorTotal.Equal(dec("30.50")), "10 + 8 + 12.50")
		assert.True(t, d.DespesaExtra.Equal(dec("12.50")))
	})

	t.Run("preco zero ainda cobra taxas fixas", func(t *testing.T) {
		d := Calculate(decimal.Zero, decimal.Zero, false, cfg, decimal.Zero)
		assert.True(t, d.ValorTotal.Equal(dec("58.00")))
	})
}

func TestCalculateNormalBand(t *testing.T) {
	cfg := testConfig()
	preco := dec("4.08")

	for _, consumo := range []string{"0.50", "1", "15.25", "29.99", "30"} {
		d := Calculate(dec(consumo), preco, true, cfg, decimal.Zero)

		assert.True(t, d.ValorFaixaExcedente1.IsZero(), "consumo %s", consumo)
		assert.True(t, d.ValorFaixaExcedente2.IsZero(), "consumo %s", consumo)
		assert.True(t, d.ValorFaixaNormal.Equal(dec(consumo).Mul(preco)), "consumo %s", consumo)
		assert.True(t, d.ValorTotal.Equal(dec(consumo).Mul(preco).Add(cfg.TaxaAssociado)), "consumo %s", consumo)
	}
}

func TestCalculateBandBoundaries(t *testing.T) {
	cfg := testConfig()
	preco := dec("4.08")

	t.Run("consumo igual ao teto normal fica todo na faixa normal", func(t *testing.T) {
		d := Calculate(dec("30"), preco, true, cfg, decimal.Zero)

		assert.True(t, d.ValorFaixaNormal.Equal(dec("30").Mul(preco)))
		assert.True(t, d.ValorFaixaExcedente1.IsZero())
		assert.True(t, d.ValorFaixaExcedente2.IsZero())
	})

	t.Run("consumo igual ao teto da faixa 1 nao entra na faixa 2", func(t *testing.T) {
		d := Calculate(dec("50"), preco, true, cfg, decimal.Zero)

		assert.True(t, d.ValorFaixaNormal.Equal(dec("30").Mul(preco)))
		assert.True(t, d.ValorFaixaExcedente1.Equal(dec("20").Mul(preco).Mul(dec("1.3"))))
		assert.True(t, d.ValorFaixaExcedente2.IsZero())
	})
}

func TestCalculateProgressiveSchedule(t *testing.T) {
	// 55 m³ at R$ 4.08/m³: 30 at base price, 20 at +30%, 5 at +60%
	cfg := testConfig()

	d := Calculate(dec("55"), dec("4.08"), true, cfg, decimal.Zero)

	assert.True(t, d.ValorFaixaNormal.Equal(dec("122.40")), "got %s", d.ValorFaixaNormal)
	assert.True(t, d.ValorFaixaExcedente1.Equal(dec("106.08")), "got %s", d.ValorFaixaExcedente1)
	assert.True(t, d.ValorFaixaExcedente2.Equal(dec("32.64")), "got %s", d.ValorFaixaExcedente2)
	assert.True(t, d.Subtotal.Equal(dec("261.12")), "got %s", d.Subtotal)
	assert.True(t, d.ValorTotal.Equal(dec("269.12")), "got %s", d.ValorTotal)
	assert.Nil(t, d.TaxaMinima)
	assert.NotEmpty(t, d.Descricao)
}

func TestCalculateTotalIsMonotonic(t *testing.T) {
	cfg := testConfig()
	preco := dec("4.08")
	passo := dec("0.5")

	// the sweep stays on the positive domain: at zero the minimum fee applies
	// instead of the variable charge, so the zero-vs-positive relation is a
	// separate check below
	anterior := Calculate(passo, preco, true, cfg, decimal.Zero).ValorTotal
	for consumo := passo.Add(passo); consumo.LessThanOrEqual(dec("80")); consumo = consumo.Add(passo) {
		total := Calculate(consumo, preco, true, cfg, decimal.Zero).ValorTotal
		assert.True(t, total.GreaterThanOrEqual(anterior),
			"total caiu em consumo %s: %s < %s", consumo, total, anterior)
		anterior = total
	}
}

func TestCalculateZeroChargesMinimumOverSmallVariable(t *testing.T) {
	cfg := testConfig()
	preco := dec("4.08")

	// a small positive consumption bills below the zero-consumption minimum
	// fee: 0.5 m³ costs 2.04 + 8.00 while zero costs 10.00 + 8.00
	zero := Calculate(decimal.Zero, preco, true, cfg, decimal.Zero)
	pequeno := Calculate(dec("0.5"), preco, true, cfg, decimal.Zero)

	assert.True(t, zero.ValorTotal.Equal(dec("18.00")), "got %s", zero.ValorTotal)
	assert.True(t, pequeno.ValorTotal.Equal(dec("10.04")), "got %s", pequeno.ValorTotal)
	assert.True(t, pequeno.ValorTotal.LessThan(zero.ValorTotal))
}

func TestCalculateContinuityAtBoundaries(t *testing.T) {
	cfg := testConfig()
	preco := dec("4.08")
	epsilon := dec("0.0001")

	// crossing a band boundary must not introduce a price jump: the totals at
	// the ceiling and just above it may differ only by the marginal rate
	// applied to epsilon
	for _, teto := range []string{"30", "50"} {
		abaixo := Calculate(dec(teto), preco, true, cfg, decimal.Zero).ValorTotal
		acima := Calculate(dec(teto).Add(epsilon), preco, true, cfg, decimal.Zero).ValorTotal

		delta := acima.Sub(abaixo)
		assert.True(t, delta.GreaterThanOrEqual(decimal.Zero), "teto %s", teto)
		assert.True(t, delta.LessThan(dec("0.01")),
			"descontinuidade no teto %s: delta %s", teto, delta)
	}
}

func TestCalculateWideNormalBand(t *testing.T) {
	// schedule where the surcharge bands never apply to ordinary usage
	cfg := testConfig()
	cfg.FaixaNormalAte = 1000
	cfg.FaixaExcedente1Ate = 2000

	d := Calculate(dec("120"), dec("2.00"), true, cfg, decimal.Zero)

	assert.True(t, d.ValorFaixaNormal.Equal(dec("240.00")))
	assert.True(t, d.ValorFaixaExcedente1.IsZero())
	assert.True(t, d.ValorTotal.Equal(dec("248.00")))
}
