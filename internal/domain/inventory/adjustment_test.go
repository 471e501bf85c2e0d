package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/faro-api/internal/domain/entity"
	"github.com/jhoicas/faro-api/internal/domain/inventory"
)

func article(id int64, stock int) *entity.Article {
	return &entity.Article{ID: id, CompanyID: "c1", Descripcion: "Remera", Stock: stock, FkIDAgrupador: 1}
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock derivado
// ──────────────────────────────────────────────────────────────────────────────

func TestDerivedStock_BaseMasNuevoMenosDescontar(t *testing.T) {
	for b := 0; b <= 6; b += 3 {
		for n := 0; n <= 6; n += 2 {
			for d := 0; d <= 12; d += 4 {
				adj := inventory.NewAdjustment("")
				adj.Load(article(42, b))
				adj.SetStockNuevo(n)
				adj.SetStockDescontar(d)

				got, ok := adj.DerivedStock()
				require.True(t, ok)
				assert.Equal(t, b+n-d, got, "b=%d n=%d d=%d", b, n, d)
			}
		}
	}
}

func TestDerivedStock_PermiteNegativoIntermedio(t *testing.T) {
	adj := inventory.NewAdjustment("")
	adj.Load(article(42, 5))
	adj.SetStockDescontar(10)

	got, _ := adj.DerivedStock()
	assert.Equal(t, -5, got)

	adj.SetStockNuevo(7)
	got, _ = adj.DerivedStock()
	assert.Equal(t, 2, got)
	assert.Equal(t, inventory.StateEditing, adj.State())
}

func TestDerivedStock_ModoCreacionNoAplica(t *testing.T) {
	adj := inventory.NewAdjustment("")
	adj.Load(nil)
	adj.SetStockNuevo(3)
	adj.SetStockDescontar(1)

	_, ok := adj.DerivedStock()
	assert.False(t, ok)
	assert.False(t, adj.IsEdit())
	assert.Zero(t, adj.StockNuevo(), "los campos de ajuste no existen en creación")
	assert.Empty(t, adj.PlannedMovements("u1"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambio de artículo
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_CambioDeArticuloReiniciaAjustes(t *testing.T) {
	adj := inventory.NewAdjustment("")
	adj.Load(article(1, 10))
	adj.SetStockNuevo(4)
	adj.SetStockDescontar(2)

	adj.Load(article(2, 7))

	assert.Zero(t, adj.StockNuevo())
	assert.Zero(t, adj.StockDescontar())
	assert.Equal(t, 7, adj.BaseStock())
	assert.Equal(t, inventory.StateIdle, adj.State())
	got, _ := adj.DerivedStock()
	assert.Equal(t, 7, got)
	assert.Equal(t, int64(2), adj.Article().ID)
}

func TestLoad_TomaFotoDelArticulo(t *testing.T) {
	a := article(1, 10)
	adj := inventory.NewAdjustment("")
	adj.Load(a)

	a.Stock = 99
	assert.Equal(t, 10, adj.BaseStock(), "el stock base no se relee durante la edición")
	assert.Equal(t, 10, adj.Article().Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos planificados
// ──────────────────────────────────────────────────────────────────────────────

func TestPlannedMovements_SoloNuevo(t *testing.T) {
	adj := inventory.NewAdjustment("")
	adj.Load(article(42, 5))
	adj.SetStockNuevo(3)

	movs := adj.PlannedMovements("u1")
	require.Len(t, movs, 1)
	assert.Equal(t, int64(42), movs[0].FkIDArticulo)
	assert.Equal(t, entity.MovementTipoEntrada, movs[0].Tipo)
	assert.Equal(t, 3, movs[0].Cantidad)
	assert.Equal(t, entity.MovementOrigenAjuste, movs[0].Origen)
	assert.Nil(t, movs[0].FkIDOrden)
	assert.Equal(t, "u1", movs[0].CreatedBy)
	got, _ := adj.DerivedStock()
	assert.Equal(t, 8, got)
}

func TestPlannedMovements_NuevoNegativoEsSalida(t *testing.T) {
	adj := inventory.NewAdjustment("")
	adj.Load(article(42, 5))
	adj.SetStockNuevo(-2)

	movs := adj.PlannedMovements("u1")
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTipoSalida, movs[0].Tipo)
	assert.Equal(t, -2, movs[0].Cantidad)
}

func TestPlannedMovements_DescontarSiempreNegativo(t *testing.T) {
	for _, d := range []int{2, -2} {
		adj := inventory.NewAdjustment("")
		adj.Load(article(42, 5))
		adj.SetStockDescontar(d)

		movs := adj.PlannedMovements("u1")
		require.Len(t, movs, 1)
		assert.Equal(t, entity.MovementTipoSalida, movs[0].Tipo)
		assert.Equal(t, -2, movs[0].Cantidad, "d=%d", d)
	}
}

func TestPlannedMovements_AmbosEnOrden(t *testing.T) {
	adj := inventory.NewAdjustment("sess-1")
	adj.Load(article(42, 5))
	adj.SetStockNuevo(3)
	adj.SetStockDescontar(2)

	movs := adj.PlannedMovements("u1")
	require.Len(t, movs, 2)
	assert.Equal(t, entity.MovementTipoEntrada, movs[0].Tipo)
	assert.Equal(t, 3, movs[0].Cantidad)
	assert.Equal(t, "c1:42:sess-1:nuevo", movs[0].IdempotencyKey)
	assert.Equal(t, entity.MovementTipoSalida, movs[1].Tipo)
	assert.Equal(t, -2, movs[1].Cantidad)
	assert.Equal(t, "c1:42:sess-1:descontar", movs[1].IdempotencyKey)
	got, _ := adj.DerivedStock()
	assert.Equal(t, 6, got)
}

func TestPlannedMovements_SinAjustesNoHayMovimientos(t *testing.T) {
	adj := inventory.NewAdjustment("")
	adj.Load(article(42, 5))

	assert.Empty(t, adj.PlannedMovements("u1"))
	got, _ := adj.DerivedStock()
	assert.Equal(t, 5, got)
}

func TestPlannedMovements_SinClaveNoDeduplica(t *testing.T) {
	adj := inventory.NewAdjustment("")
	adj.Load(article(42, 5))
	adj.SetStockNuevo(1)

	movs := adj.PlannedMovements("u1")
	require.Len(t, movs, 1)
	assert.Empty(t, movs[0].IdempotencyKey)
}

func TestPlannedMovements_ClaveIncluyeEmpresaYArticulo(t *testing.T) {
	a := inventory.NewAdjustment("1")
	a.Load(article(7, 10))
	a.SetStockNuevo(4)
	b := inventory.NewAdjustment("1")
	b.Load(article(8, 10))
	b.SetStockNuevo(4)

	ma, mb := a.PlannedMovements("u1")[0], b.PlannedMovements("u1")[0]
	assert.NotEqual(t, ma.IdempotencyKey, mb.IdempotencyKey)
	assert.False(t, ma.SameAdjustment(mb))

	again := inventory.NewAdjustment("1")
	again.Load(article(7, 10))
	again.SetStockNuevo(4)
	assert.True(t, ma.SameAdjustment(again.PlannedMovements("u2")[0]))

	again.SetStockNuevo(5)
	assert.False(t, ma.SameAdjustment(again.PlannedMovements("u2")[0]))
}
