package tariff

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	t.Run("configuracao valida", func(t *testing.T) {
		assert.NoError(t, ValidateConfig(testConfig()))
	})

	t.Run("teto da faixa 1 menor que o teto normal", func(t *testing.T) {
		cfg := testConfig()
		cfg.FaixaExcedente1Ate = 20

		err := ValidateConfig(cfg)
		require.Error(t, err)

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Len(t, cfgErr.Problems, 1)
	})

	t.Run("valores negativos acumulam problemas", func(t *testing.T) {
		cfg := testConfig()
		cfg.TaxaMinimaComHidrometro = decimal.RequireFromString("-1")
		cfg.TaxaAssociado = decimal.RequireFromString("-8")
		cfg.FaixaExcedente2Percent = decimal.RequireFromString("-60")

		err := ValidateConfig(cfg)
		require.Error(t, err)

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Len(t, cfgErr.Problems, 3)
	})

	t.Run("faixa normal negativa", func(t *testing.T) {
		cfg := testConfig()
		cfg.FaixaNormalAte = -1
		cfg.FaixaExcedente1Ate = -1

		assert.Error(t, ValidateConfig(cfg))
	})
}
