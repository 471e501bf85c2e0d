package http_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/faro-api/internal/application/ports"
	"github.com/jhoicas/faro-api/internal/domain"
	"github.com/jhoicas/faro-api/internal/domain/entity"
)

var errDown = errors.New("connection refused")

type memArticles struct {
	mu   sync.Mutex
	byID map[int64]*entity.Article
	next int64
}

func (m *memArticles) Create(_ context.Context, a *entity.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	a.ID = m.next
	cp := *a
	m.byID[a.ID] = &cp
	return nil
}

func (m *memArticles) GetByID(_ context.Context, id int64) (*entity.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *memArticles) Update(_ context.Context, a *entity.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	m.byID[a.ID] = &cp
	return nil
}

func (m *memArticles) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Article
	for _, a := range m.byID {
		if a.CompanyID == companyID {
			out = append(out, a)
		}
	}
	return out, nil
}

type memMovements struct {
	mu     sync.Mutex
	stored []*entity.StockMovement
	failAt int
	calls  int
}

func (m *memMovements) Record(_ context.Context, mv *entity.StockMovement) (*entity.StockMovement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.calls == m.failAt {
		return nil, errDown
	}
	if mv.IdempotencyKey != "" {
		for _, s := range m.stored {
			if s.CompanyID != mv.CompanyID || s.IdempotencyKey != mv.IdempotencyKey {
				continue
			}
			if !s.SameAdjustment(mv) {
				return nil, domain.ErrConflict
			}
			return s, nil
		}
	}
	cp := *mv
	cp.ID = int64(len(m.stored) + 1)
	m.stored = append(m.stored, &cp)
	return &cp, nil
}

func (m *memMovements) ListByArticle(_ context.Context, articleID int64, _, _ int) ([]*entity.StockMovement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.StockMovement
	for _, s := range m.stored {
		if s.FkIDArticulo == articleID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memCatalog struct{}

func (memCatalog) ListAgrupadores(context.Context, string) ([]entity.Agrupador, error) {
	return []entity.Agrupador{{ID: 1, Nombre: "Remeras"}}, nil
}

func (memCatalog) ListMarcas(context.Context, string) ([]entity.Marca, error) {
	return []entity.Marca{{ID: 3, Descripcion: "Acme"}}, nil
}

func (memCatalog) ListTiposGasto(context.Context, string) ([]entity.TipoGasto, error) {
	return []entity.TipoGasto{{ID: 1, Descripcion: "adelanto"}, {ID: 2, Descripcion: "viaticos"}}, nil
}

type trialSwitch struct{ expired bool }

func (t *trialSwitch) CheckTrial(_ context.Context, _ string, onExpired func()) (bool, error) {
	if t.expired && onExpired != nil {
		onExpired()
	}
	return t.expired, nil
}

type memExpenses struct {
	mu   sync.Mutex
	list []*entity.EmployeeExpense
}

func (m *memExpenses) Create(_ context.Context, e *entity.EmployeeExpense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = int64(len(m.list) + 1)
	m.list = append(m.list, e)
	return nil
}

func (m *memExpenses) ListByCompany(_ context.Context, companyID string) ([]*entity.EmployeeExpense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.EmployeeExpense
	for _, e := range m.list {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

type memCash struct {
	err      error
	recorded []*entity.CashMovement
}

func (m *memCash) Record(_ context.Context, mv *entity.CashMovement) error {
	if m.err != nil {
		return m.err
	}
	m.recorded = append(m.recorded, mv)
	return nil
}

type echoWebhook struct{}

func (echoWebhook) Send(_ context.Context, p ports.WebhookPayload) ([]byte, error) {
	return []byte(`{"output":"recibido: ` + p.Message + `"}`), nil
}

type memCompanies struct{}

func (memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return &entity.Company{ID: id, Name: "Tienda"}, nil
}
