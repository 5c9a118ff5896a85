package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agua-be-svc/internal/tariff"
)

func newTestConfiguracaoService(repo *fakeConfigRepo) ConfiguracaoService {
	return NewConfiguracaoService(repo, testLogger())
}

func validConfiguracaoRequest() *ConfiguracaoRequest {
	return &ConfiguracaoRequest{
		ChavePix:                 "pix@associacao.org.br",
		NomeAssociacao:           "AMCRS",
		TelefoneContato:          "11987654321",
		MensagemCobrancaTemplate: "Olá {nome}, sua conta de {mes} é R$ {valor}.",
		TaxaMinimaComHidrometro:  dec("10.00"),
		TaxaMinimaSemHidrometro:  dec("50.00"),
		TaxaAssociado:            dec("8.00"),
		PercentualMultaAtraso:    dec("2"),
		FaixaNormalAte:           30,
		FaixaExcedente1Ate:       50,
		FaixaExcedente1Percent:   dec("30"),
		FaixaExcedente2Percent:   dec("60"),
	}
}

func TestUpdateConfiguracaoSavesAllFields(t *testing.T) {
	repo := &fakeConfigRepo{config: testConfiguracao()}
	svc := newTestConfiguracaoService(repo)

	config, err := svc.Update(validConfiguracaoRequest())
	require.NoError(t, err)

	assert.Equal(t, "11987654321", config.TelefoneContato)
	assert.Equal(t, "Olá {nome}, sua conta de {mes} é R$ {valor}.", config.MensagemCobrancaTemplate)
	assert.Equal(t, 30, config.FaixaNormalAte)
	assert.True(t, config.TaxaMinimaSemHidrometro.Equal(dec("50.00")))

	saved, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "11987654321", saved.TelefoneContato)
	assert.Equal(t, "Olá {nome}, sua conta de {mes} é R$ {valor}.", saved.MensagemCobrancaTemplate)
}

func TestUpdateConfiguracaoAllowsEmptyOptionalFields(t *testing.T) {
	repo := &fakeConfigRepo{config: testConfiguracao()}
	svc := newTestConfiguracaoService(repo)

	req := validConfiguracaoRequest()
	req.TelefoneContato = ""
	req.MensagemCobrancaTemplate = ""

	config, err := svc.Update(req)
	require.NoError(t, err)
	assert.Empty(t, config.TelefoneContato)
	assert.Empty(t, config.MensagemCobrancaTemplate)
}

func TestUpdateConfiguracaoRequiresChavePix(t *testing.T) {
	svc := newTestConfiguracaoService(&fakeConfigRepo{config: testConfiguracao()})

	req := validConfiguracaoRequest()
	req.ChavePix = ""

	_, err := svc.Update(req)
	require.Error(t, err)
}

func TestUpdateConfiguracaoRejectsInvalidSchedule(t *testing.T) {
	svc := newTestConfiguracaoService(&fakeConfigRepo{config: testConfiguracao()})

	req := validConfiguracaoRequest()
	req.FaixaExcedente1Ate = 10 // below the normal band upper bound

	_, err := svc.Update(req)
	require.Error(t, err)

	var cfgErr *tariff.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}
