package tariff

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"agua-be-svc/internal/models"
)

func TestTotalDespesas(t *testing.T) {
	periodo := &models.Periodo{
		DespesaEnergia:         dec("1200.00"),
		DespesaOutros:          dec("300.00"),
		DespesaServicoCobranca: dec("150.00"),
		DespesaExtraTotal:      dec("50.00"),
	}

	assert.True(t, TotalDespesas(periodo).Equal(dec("1700.00")))
}

func TestValorM3(t *testing.T) {
	periodo := &models.Periodo{
		DespesaEnergia:         dec("1200.00"),
		DespesaOutros:          dec("300.00"),
		DespesaServicoCobranca: dec("150.00"),
		DespesaExtraTotal:      dec("50.00"),
	}

	t.Run("divide despesas pelo consumo total", func(t *testing.T) {
		valor := ValorM3(periodo, dec("400"))
		assert.True(t, valor.Equal(dec("4.25")), "got %s", valor)
	})

	t.Run("consumo total zero retorna zero sem erro", func(t *testing.T) {
		valor := ValorM3(periodo, decimal.Zero)
		assert.True(t, valor.IsZero())
	})

	t.Run("periodo sem despesas", func(t *testing.T) {
		valor := ValorM3(&models.Periodo{}, dec("100"))
		assert.True(t, valor.IsZero())
	})
}
