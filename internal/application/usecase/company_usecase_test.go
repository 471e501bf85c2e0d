package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/faro-api/internal/application/usecase"
	"github.com/jhoicas/faro-api/internal/domain"
	"github.com/jhoicas/faro-api/internal/domain/entity"
)

func TestCompanyCurrent_PruebaVencida(t *testing.T) {
	ended := time.Now().Add(-time.Hour)
	uc := usecase.NewCompanyUseCase(fakeCompanies{"c1": {ID: "c1", Name: "Tienda", TrialEndsAt: &ended}})

	out, err := uc.Current(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Tienda", out.Name)
	assert.True(t, out.TrialExpired)
}

func TestCompanyCurrent_ConSuscripcion_NoVence(t *testing.T) {
	ended := time.Now().Add(-time.Hour)
	uc := usecase.NewCompanyUseCase(fakeCompanies{"c1": {ID: "c1", TrialEndsAt: &ended, SubscriptionActive: true}})

	out, err := uc.Current(context.Background(), "c1")
	require.NoError(t, err)
	assert.False(t, out.TrialExpired)
}

func TestCompanyCurrent_Inexistente(t *testing.T) {
	uc := usecase.NewCompanyUseCase(fakeCompanies{})
	_, err := uc.Current(context.Background(), "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

type stubCatalog struct{}

func (stubCatalog) ListAgrupadores(context.Context, string) ([]entity.Agrupador, error) {
	return []entity.Agrupador{{ID: 1, Nombre: "Remeras"}}, nil
}

func (stubCatalog) ListMarcas(context.Context, string) ([]entity.Marca, error) { return nil, nil }

func (stubCatalog) ListTiposGasto(context.Context, string) ([]entity.TipoGasto, error) {
	return []entity.TipoGasto{{ID: 2, Descripcion: "sueldo"}}, nil
}

func TestCatalog_MapeaALabel(t *testing.T) {
	uc := usecase.NewCatalogUseCase(stubCatalog{})

	agr, err := uc.Agrupadores(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Remeras", agr[0].Label)

	tipos, err := uc.TiposGasto(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), tipos[0].ID)
	assert.Equal(t, "sueldo", tipos[0].Label)

	marcas, err := uc.Marcas(context.Background(), "c1")
	require.NoError(t, err)
	assert.NotNil(t, marcas, "lista vacía, no null")
}
