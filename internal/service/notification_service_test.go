package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agua-be-svc/internal/models"
	"agua-be-svc/internal/models/response"
)

func TestGetCobrancasWhatsApp(t *testing.T) {
	telefone1 := "11987654321"
	moradorRepo := newFakeMoradorRepo(
		&models.Morador{ID: 1, NumeroChacara: "12", Nome: "Maria", Telefone: &telefone1, TemHidrometro: true, Ativo: true},
		&models.Morador{ID: 2, NumeroChacara: "15", Nome: "João", TemHidrometro: true, Ativo: true},
	)
	periodoRepo := newFakePeriodoRepo(testPeriodo())
	consumoRepo := newFakeConsumoRepo(
		&models.Consumo{ID: 1, PeriodoID: 1, MoradorID: 1, ConsumoM3: dec("55"), ValorCalculado: dec("269.12"), Morador: mustMorador(t, moradorRepo, 1)},
		&models.Consumo{ID: 2, PeriodoID: 1, MoradorID: 2, ConsumoM3: dec("20"), ValorCalculado: dec("100.00"), Morador: mustMorador(t, moradorRepo, 2)},
	)
	configRepo := &fakeConfigRepo{config: testConfiguracao()}
	envioRepo := &fakeCobrancaEnvioRepo{}

	billingSvc := newTestBillingService(periodoRepo, moradorRepo, consumoRepo, configRepo, newFakePagamentoRepo())
	svc := NewNotificationService(billingSvc, periodoRepo, configRepo, envioRepo, testLogger())

	cobrancas, err := svc.GetCobrancasWhatsApp(1)
	require.NoError(t, err)

	// João has no phone and is skipped
	require.Len(t, cobrancas, 1)
	cobranca := cobrancas[0]
	assert.Equal(t, uint(1), cobranca.MoradorID)
	assert.Contains(t, cobranca.URL, "https://wa.me/5511987654321?text=")
	assert.Contains(t, cobranca.Mensagem, "Maria")
	assert.Contains(t, cobranca.Mensagem, "269.12")
	assert.Contains(t, cobranca.Mensagem, "pix@associacao.org.br")
	assert.False(t, cobranca.JaEnviado)

	require.NoError(t, svc.MarcarEnviado(1, 1))

	cobrancas, err = svc.GetCobrancasWhatsApp(1)
	require.NoError(t, err)
	require.Len(t, cobrancas, 1)
	assert.True(t, cobrancas[0].JaEnviado)
}

func TestGetCobrancasWhatsAppSkipsPaidCharges(t *testing.T) {
	telefone := "11987654321"
	moradorRepo := newFakeMoradorRepo(
		&models.Morador{ID: 1, NumeroChacara: "12", Nome: "Maria", Telefone: &telefone, TemHidrometro: true, Ativo: true},
	)
	periodoRepo := newFakePeriodoRepo(testPeriodo())
	consumoRepo := newFakeConsumoRepo(
		&models.Consumo{ID: 1, PeriodoID: 1, MoradorID: 1, ConsumoM3: dec("10"), ValorCalculado: dec("48.80"), Morador: mustMorador(t, moradorRepo, 1)},
	)
	pagamentoRepo := newFakePagamentoRepo(&models.Pagamento{ConsumoID: 1, Status: models.PagamentoStatusAprovado})
	configRepo := &fakeConfigRepo{config: testConfiguracao()}

	billingSvc := newTestBillingService(periodoRepo, moradorRepo, consumoRepo, configRepo, pagamentoRepo)
	svc := NewNotificationService(billingSvc, periodoRepo, configRepo, &fakeCobrancaEnvioRepo{}, testLogger())

	cobrancas, err := svc.GetCobrancasWhatsApp(1)
	require.NoError(t, err)
	assert.Empty(t, cobrancas)
}

func TestMontaMensagemUsesDefaultTemplate(t *testing.T) {
	config := testConfiguracao()
	config.MensagemCobrancaTemplate = ""

	consumo := &response.ConsumoDetalheResponse{
		NomeMorador:    "Maria",
		NumeroChacara:  "12",
		Mes:            3,
		MesNome:        "Março",
		Ano:            2025,
		ConsumoM3:      dec("55"),
		ValorCalculado: dec("269.12"),
	}
	mensagem := montaMensagem(config.MensagemCobrancaTemplate, consumo, config)

	assert.Contains(t, mensagem, "Maria")
	assert.Contains(t, mensagem, "Março")
	assert.Contains(t, mensagem, "269.12")
	assert.Contains(t, mensagem, config.ChavePix)
	assert.NotContains(t, mensagem, "{nome}")
}

func TestMontaMensagemCustomTemplate(t *testing.T) {
	config := testConfiguracao()

	consumo := &response.ConsumoDetalheResponse{
		NomeMorador:    "Maria",
		NumeroChacara:  "12",
		MesNome:        "Março",
		Ano:            2025,
		ConsumoM3:      dec("55"),
		ValorCalculado: dec("269.12"),
	}
	mensagem := montaMensagem("Chácara {chacara}: {consumo} m³, R$ {valor}", consumo, config)

	assert.Equal(t, "Chácara 12: 55.0 m³, R$ 269.12", mensagem)
}

func mustMorador(t *testing.T, repo *fakeMoradorRepo, id uint) *models.Morador {
	t.Helper()
	m, err := repo.GetByID(id)
	require.NoError(t, err)
	return m
}
