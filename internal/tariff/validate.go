package tariff

import (
	"fmt"
	"strings"

	"agua-be-svc/internal/models"
)

// ConfigError describes a structurally invalid tariff configuration. It is
// returned before any calculation runs so a broken schedule never produces
// charges.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	return "configuração de tarifa inválida: " + strings.Join(e.Problems, "; ")
}

// ValidateConfig checks the tariff schedule fields: band ordering and
// non-negative fees and percentages
func ValidateConfig(cfg *models.Configuracao) error {
	var problems []string

	if cfg.FaixaNormalAte < 0 {
		problems = append(problems, fmt.Sprintf("faixa_normal_ate negativa (%d)", cfg.FaixaNormalAte))
	}
	if cfg.FaixaExcedente1Ate < cfg.FaixaNormalAte {
		problems = append(problems, fmt.Sprintf("faixa_excedente_1_ate (%d) menor que faixa_normal_ate (%d)",
			cfg.FaixaExcedente1Ate, cfg.FaixaNormalAte))
	}
	if cfg.TaxaMinimaComHidrometro.IsNegative() {
		problems = append(problems, "taxa_minima_com_hidrometro negativa")
	}
	if cfg.TaxaMinimaSemHidrometro.IsNegative() {
		problems = append(problems, "taxa_minima_sem_hidrometro negativa")
	}
	if cfg.TaxaAssociado.IsNegative() {
		problems = append(problems, "taxa_associado negativa")
	}
	if cfg.PercentualMultaAtraso.IsNegative() {
		problems = append(problems, "percentual_multa_atraso negativo")
	}
	if cfg.FaixaExcedente1Percent.IsNegative() {
		problems = append(problems, "faixa_excedente_1_percentual negativo")
	}
	if cfg.FaixaExcedente2Percent.IsNegative() {
		problems = append(problems, "faixa_excedente_2_percentual negativo")
	}

	if len(problems) > 0 {
		return &ConfigError{Problems: problems}
	}
	return nil
}
