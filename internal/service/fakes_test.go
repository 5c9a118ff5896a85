package service

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"agua-be-svc/internal/models"
)

// In-memory repository fakes used across the service tests.

type fakePeriodoRepo struct {
	periodos map[uint]*models.Periodo
	nextID   uint
	saveErr  error
}

func newFakePeriodoRepo(periodos ...*models.Periodo) *fakePeriodoRepo {
	r := &fakePeriodoRepo{periodos: make(map[uint]*models.Periodo), nextID: 1}
	for _, p := range periodos {
		if p.ID == 0 {
			p.ID = r.nextID
		}
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.periodos[p.ID] = p
	}
	return r
}

func (r *fakePeriodoRepo) GetAll() ([]*models.Periodo, error) {
	out := make([]*models.Periodo, 0, len(r.periodos))
	for _, p := range r.periodos {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePeriodoRepo) GetByID(id uint) (*models.Periodo, error) {
	p, ok := r.periodos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePeriodoRepo) GetByMesAno(mes int, ano int) (*models.Periodo, error) {
	for _, p := range r.periodos {
		if p.Mes == mes && p.Ano == ano {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePeriodoRepo) Create(periodo *models.Periodo) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	periodo.ID = r.nextID
	r.nextID++
	r.periodos[periodo.ID] = periodo
	return nil
}

func (r *fakePeriodoRepo) Update(periodo *models.Periodo) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.periodos[periodo.ID] = periodo
	return nil
}

func (r *fakePeriodoRepo) SetFechado(id uint, fechado bool) error {
	p, ok := r.periodos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Fechado = fechado
	return nil
}

type fakeMoradorRepo struct {
	moradores map[uint]*models.Morador
	nextID    uint
}

func newFakeMoradorRepo(moradores ...*models.Morador) *fakeMoradorRepo {
	r := &fakeMoradorRepo{moradores: make(map[uint]*models.Morador), nextID: 1}
	for _, m := range moradores {
		if m.ID == 0 {
			m.ID = r.nextID
		}
		if m.ID >= r.nextID {
			r.nextID = m.ID + 1
		}
		r.moradores[m.ID] = m
	}
	return r
}

func (r *fakeMoradorRepo) GetAll(search string, page int, limit int) ([]*models.Morador, int64, error) {
	out := make([]*models.Morador, 0, len(r.moradores))
	for _, m := range r.moradores {
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (r *fakeMoradorRepo) GetAtivos() ([]*models.Morador, error) {
	out := make([]*models.Morador, 0, len(r.moradores))
	for _, m := range r.moradores {
		if m.Ativo {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMoradorRepo) GetByID(id uint) (*models.Morador, error) {
	m, ok := r.moradores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *fakeMoradorRepo) GetByNumeroChacara(numeroChacara string) (*models.Morador, error) {
	for _, m := range r.moradores {
		if m.NumeroChacara == numeroChacara {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMoradorRepo) Create(morador *models.Morador) error {
	morador.ID = r.nextID
	r.nextID++
	r.moradores[morador.ID] = morador
	return nil
}

func (r *fakeMoradorRepo) Update(morador *models.Morador) error {
	r.moradores[morador.ID] = morador
	return nil
}

type fakeConsumoRepo struct {
	consumos map[uint]*models.Consumo
	nextID   uint

	savedTotal   decimal.Decimal
	savedPeriodo uint
	saveErr      error
}

func newFakeConsumoRepo(consumos ...*models.Consumo) *fakeConsumoRepo {
	r := &fakeConsumoRepo{consumos: make(map[uint]*models.Consumo), nextID: 1}
	for _, c := range consumos {
		if c.ID == 0 {
			c.ID = r.nextID
		}
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
		r.consumos[c.ID] = c
	}
	return r
}

func (r *fakeConsumoRepo) GetByID(id uint) (*models.Consumo, error) {
	c, ok := r.consumos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeConsumoRepo) GetByPeriodo(periodoID uint) ([]*models.Consumo, error) {
	out := make([]*models.Consumo, 0)
	for _, c := range r.consumos {
		if c.PeriodoID == periodoID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeConsumoRepo) GetByMorador(moradorID uint) ([]*models.Consumo, error) {
	out := make([]*models.Consumo, 0)
	for _, c := range r.consumos {
		if c.MoradorID == moradorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeConsumoRepo) GetByPeriodoAndMorador(periodoID uint, moradorID uint) (*models.Consumo, error) {
	for _, c := range r.consumos {
		if c.PeriodoID == periodoID && c.MoradorID == moradorID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeConsumoRepo) SaveRecalculation(ctx context.Context, periodoID uint, totalConsumo decimal.Decimal, consumos []*models.Consumo) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.savedPeriodo = periodoID
	r.savedTotal = totalConsumo
	for _, c := range consumos {
		existing, err := r.GetByPeriodoAndMorador(periodoID, c.MoradorID)
		if err == nil {
			c.ID = existing.ID
		} else {
			c.ID = r.nextID
			r.nextID++
		}
		r.consumos[c.ID] = c
	}
	return nil
}

type fakeConfigRepo struct {
	config *models.Configuracao
	err    error
}

func (r *fakeConfigRepo) GetActive() (*models.Configuracao, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.config, nil
}

func (r *fakeConfigRepo) Save(config *models.Configuracao) error {
	if r.err != nil {
		return r.err
	}
	r.config = config
	return nil
}

type fakePagamentoRepo struct {
	pagamentos map[uint]*models.Pagamento
	nextID     uint
}

func newFakePagamentoRepo(pagamentos ...*models.Pagamento) *fakePagamentoRepo {
	r := &fakePagamentoRepo{pagamentos: make(map[uint]*models.Pagamento), nextID: 1}
	for _, p := range pagamentos {
		if p.ID == 0 {
			p.ID = r.nextID
		}
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.pagamentos[p.ID] = p
	}
	return r
}

func (r *fakePagamentoRepo) Create(pagamento *models.Pagamento) error {
	pagamento.ID = r.nextID
	r.nextID++
	r.pagamentos[pagamento.ID] = pagamento
	return nil
}

func (r *fakePagamentoRepo) GetByID(id uint) (*models.Pagamento, error) {
	p, ok := r.pagamentos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePagamentoRepo) GetByPeriodo(periodoID uint) ([]*models.Pagamento, error) {
	out := make([]*models.Pagamento, 0)
	for _, p := range r.pagamentos {
		if p.PeriodoID == periodoID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePagamentoRepo) GetByConsumo(consumoID uint) ([]*models.Pagamento, error) {
	out := make([]*models.Pagamento, 0)
	for _, p := range r.pagamentos {
		if p.ConsumoID == consumoID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePagamentoRepo) UpdateStatus(id uint, status string) error {
	p, ok := r.pagamentos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Status = status
	return nil
}

type fakeCobrancaEnvioRepo struct {
	envios []*models.CobrancaEnvio
}

func (r *fakeCobrancaEnvioRepo) Register(envio *models.CobrancaEnvio) error {
	for _, e := range r.envios {
		if e.PeriodoID == envio.PeriodoID && e.MoradorID == envio.MoradorID {
			e.EnviadoEm = envio.EnviadoEm
			return nil
		}
	}
	r.envios = append(r.envios, envio)
	return nil
}

func (r *fakeCobrancaEnvioRepo) GetByPeriodo(periodoID uint) ([]*models.CobrancaEnvio, error) {
	out := make([]*models.CobrancaEnvio, 0)
	for _, e := range r.envios {
		if e.PeriodoID == periodoID {
			out = append(out, e)
		}
	}
	return out, nil
}
