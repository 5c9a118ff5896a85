package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agua-be-svc/internal/models"
)

func newTestMoradorService(moradorRepo *fakeMoradorRepo, configRepo *fakeConfigRepo, billingSvc BillingService) MoradorService {
	return NewMoradorService(moradorRepo, configRepo, billingSvc, testLogger())
}

func TestCreateMoradorNormalizesPhone(t *testing.T) {
	repo := newFakeMoradorRepo()
	svc := newTestMoradorService(repo, &fakeConfigRepo{config: testConfiguracao()}, nil)

	telefone := "+55 (11) 98765-4321"
	morador, err := svc.Create(&MoradorRequest{
		NumeroChacara: "12",
		Nome:          "Maria",
		Telefone:      &telefone,
		TemHidrometro: true,
	})
	require.NoError(t, err)

	require.NotNil(t, morador.Telefone)
	assert.Equal(t, "5511987654321", *morador.Telefone)
	assert.True(t, morador.Ativo)
}

func TestCreateMoradorRejectsDuplicateChacara(t *testing.T) {
	repo := newFakeMoradorRepo(&models.Morador{NumeroChacara: "12", Nome: "Maria", Ativo: true})
	svc := newTestMoradorService(repo, &fakeConfigRepo{config: testConfiguracao()}, nil)

	_, err := svc.Create(&MoradorRequest{NumeroChacara: "12", Nome: "Outra Maria"})
	require.ErrorIs(t, err, ErrChacaraDuplicada)
}

func TestCreateMoradorRejectsInvalidPhone(t *testing.T) {
	svc := newTestMoradorService(newFakeMoradorRepo(), &fakeConfigRepo{config: testConfiguracao()}, nil)

	telefone := "1234"
	_, err := svc.Create(&MoradorRequest{NumeroChacara: "12", Nome: "Maria", Telefone: &telefone})
	require.ErrorIs(t, err, ErrTelefoneInvalido)
}

func TestUpdateMoradorKeepsChacaraUnique(t *testing.T) {
	repo := newFakeMoradorRepo(
		&models.Morador{ID: 1, NumeroChacara: "12", Nome: "Maria", Ativo: true},
		&models.Morador{ID: 2, NumeroChacara: "15", Nome: "João", Ativo: true},
	)
	svc := newTestMoradorService(repo, &fakeConfigRepo{config: testConfiguracao()}, nil)

	_, err := svc.Update(2, &MoradorRequest{NumeroChacara: "12", Nome: "João"})
	require.ErrorIs(t, err, ErrChacaraDuplicada)

	morador, err := svc.Update(2, &MoradorRequest{NumeroChacara: "16", Nome: "João"})
	require.NoError(t, err)
	assert.Equal(t, "16", morador.NumeroChacara)
}

func TestDesativarMorador(t *testing.T) {
	repo := newFakeMoradorRepo(&models.Morador{ID: 1, NumeroChacara: "12", Nome: "Maria", Ativo: true})
	svc := newTestMoradorService(repo, &fakeConfigRepo{config: testConfiguracao()}, nil)

	require.NoError(t, svc.Desativar(1))

	morador, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.False(t, morador.Ativo)
}

func TestGetPortalByChacara(t *testing.T) {
	telefone := "11987654321"
	moradorRepo := newFakeMoradorRepo(
		&models.Morador{ID: 1, NumeroChacara: "12", Nome: "Maria", Telefone: &telefone, TemHidrometro: true, Ativo: true},
	)
	periodo := testPeriodo()
	periodo.TotalConsumo = dec("400")
	periodoRepo := newFakePeriodoRepo(periodo)
	consumoRepo := newFakeConsumoRepo(&models.Consumo{
		ID:             1,
		PeriodoID:      1,
		MoradorID:      1,
		ConsumoM3:      dec("55"),
		ValorCalculado: dec("269.12"),
		Periodo:        periodo,
	})
	configRepo := &fakeConfigRepo{config: testConfiguracao()}

	billingSvc := newTestBillingService(periodoRepo, moradorRepo, consumoRepo, configRepo, newFakePagamentoRepo())
	svc := newTestMoradorService(moradorRepo, configRepo, billingSvc)

	portal, err := svc.GetPortalByChacara("12")
	require.NoError(t, err)

	assert.Equal(t, "Maria", portal.Nome)
	assert.Equal(t, "pix@associacao.org.br", portal.ChavePix)
	assert.Equal(t, "AMCRS", portal.NomeAssociacao)
	require.Len(t, portal.Consumos, 1)
	assert.True(t, portal.Consumos[0].ValorCalculado.Equal(dec("269.12")))
	assert.NotEmpty(t, portal.Consumos[0].Descricao)
}

func TestGetPortalByChacaraHidesInactiveResident(t *testing.T) {
	moradorRepo := newFakeMoradorRepo(&models.Morador{ID: 1, NumeroChacara: "12", Nome: "Maria", Ativo: false})
	svc := newTestMoradorService(moradorRepo, &fakeConfigRepo{config: testConfiguracao()}, nil)

	_, err := svc.GetPortalByChacara("12")
	require.Error(t, err)
}
