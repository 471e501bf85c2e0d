package articles_test

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/faro-api/internal/domain"
	"github.com/jhoicas/faro-api/internal/domain/entity"
)

var errRemote = errors.New("servicio no disponible")

// journal registra el orden de las llamadas a los colaboradores.
type journal struct {
	mu    sync.Mutex
	calls []string
}

func (j *journal) add(format string, args ...any) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls = append(j.calls, fmt.Sprintf(format, args...))
}

func (j *journal) list() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.calls...)
}

// ── artículos ─────────────────────────────────────────────────────────────────

type fakeArticles struct {
	j         *journal
	byID      map[int64]*entity.Article
	nextID    int64
	failWrite error
}

func newFakeArticles(j *journal, list ...*entity.Article) *fakeArticles {
	f := &fakeArticles{j: j, byID: map[int64]*entity.Article{}, nextID: 100}
	for _, a := range list {
		cp := *a
		f.byID[a.ID] = &cp
	}
	return f
}

func (f *fakeArticles) Create(_ context.Context, a *entity.Article) error {
	f.j.add("article.create stock=%d", a.Stock)
	if f.failWrite != nil {
		return f.failWrite
	}
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeArticles) GetByID(_ context.Context, id int64) (*entity.Article, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeArticles) Update(_ context.Context, a *entity.Article) error {
	f.j.add("article.update id=%d stock=%d", a.ID, a.Stock)
	if f.failWrite != nil {
		return f.failWrite
	}
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeArticles) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Article, error) {
	var out []*entity.Article
	for _, a := range f.byID {
		if a.CompanyID == companyID {
			out = append(out, a)
		}
	}
	return out, nil
}

// ── movimientos ───────────────────────────────────────────────────────────────

type fakeMovements struct {
	j       *journal
	stored  []*entity.StockMovement
	failAt  int // 1-based; 0 = nunca
	calls   int
	failErr error
}

func (f *fakeMovements) Record(_ context.Context, m *entity.StockMovement) (*entity.StockMovement, error) {
	f.calls++
	f.j.add("movement.record tipo=%s cantidad=%d", m.Tipo, m.Cantidad)
	if f.failAt == f.calls {
		return nil, f.failErr
	}
	if m.IdempotencyKey != "" {
		for _, s := range f.stored {
			if s.CompanyID != m.CompanyID || s.IdempotencyKey != m.IdempotencyKey {
				continue
			}
			if !s.SameAdjustment(m) {
				return nil, domain.ErrConflict
			}
			return s, nil
		}
	}
	cp := *m
	cp.ID = int64(len(f.stored) + 1)
	f.stored = append(f.stored, &cp)
	return &cp, nil
}

func (f *fakeMovements) ListByArticle(_ context.Context, articleID int64, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(f.stored) - 1; i >= 0; i-- {
		if f.stored[i].FkIDArticulo == articleID {
			out = append(out, f.stored[i])
		}
	}
	return out, nil
}

// ── catálogos y prueba gratis ─────────────────────────────────────────────────

type fakeCatalog struct {
	agrupadores []entity.Agrupador
}

func (f *fakeCatalog) ListAgrupadores(context.Context, string) ([]entity.Agrupador, error) {
	return f.agrupadores, nil
}

func (f *fakeCatalog) ListMarcas(context.Context, string) ([]entity.Marca, error) {
	return nil, nil
}

func (f *fakeCatalog) ListTiposGasto(context.Context, string) ([]entity.TipoGasto, error) {
	return nil, nil
}

type fakeTrial struct {
	j       *journal
	expired bool
}

func (f *fakeTrial) CheckTrial(_ context.Context, _ string, onExpired func()) (bool, error) {
	f.j.add("trial.check")
	if f.expired && onExpired != nil {
		onExpired()
	}
	return f.expired, nil
}

type fakeReport struct {
	got []*entity.StockMovement
}

func (f *fakeReport) GenerateMovementReport(_ context.Context, _ *entity.Article, list []*entity.StockMovement) ([]byte, error) {
	f.got = list
	return []byte("%PDF-1.4"), nil
}
