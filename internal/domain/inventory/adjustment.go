package inventory

import (
	"strconv"

	"github.com/jhoicas/faro-api/internal/domain/entity"
)

// State es el estado de una sesión de ajuste de stock.
type State int

const (
	StateIdle    State = iota // artículo cargado (o creación), sin cambios
	StateEditing              // algún campo de ajuste cambió
	StateSaved                // el artículo quedó persistido
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateSaved:
		return "saved"
	default:
		return "unknown"
	}
}

// Adjustment mantiene el estado efímero de una sesión de edición de un artículo:
// la foto del stock base al abrir el formulario y los dos campos de ajuste
// (stock nuevo y stock a descontar). No hace I/O.
//
// Sin artículo cargado la sesión está en modo creación: el stock es un campo libre
// y nunca se planifican movimientos.
type Adjustment struct {
	key            string
	article        *entity.Article
	baseStock      int
	stockNuevo     int
	stockDescontar int
	state          State
}

// NewAdjustment crea una sesión en modo creación. key identifica la sesión para
// deduplicar movimientos en reintentos; vacío = sin deduplicación. La clave de cada
// movimiento queda como <empresa>:<artículo>:<key>:<nuevo|descontar>.
func NewAdjustment(key string) *Adjustment {
	return &Adjustment{key: key}
}

// Load carga un artículo (nil = modo creación). Siempre reinicia los campos de ajuste
// y toma una nueva foto del stock base: cambiar de artículo no acumula ajustes.
func (a *Adjustment) Load(article *entity.Article) {
	a.stockNuevo = 0
	a.stockDescontar = 0
	a.state = StateIdle
	if article == nil {
		a.article = nil
		a.baseStock = 0
		return
	}
	snapshot := *article
	a.article = &snapshot
	a.baseStock = article.Stock
}

// SetBaseStock reemplaza la foto del stock base (la que vio el cliente al abrir el formulario).
func (a *Adjustment) SetBaseStock(base int) {
	if a.article == nil {
		return
	}
	a.baseStock = base
}

// SetStockNuevo fija la cantidad a sumar (puede ser negativa). Sin efecto en modo creación.
func (a *Adjustment) SetStockNuevo(n int) {
	if a.article == nil {
		return
	}
	a.stockNuevo = n
	a.state = StateEditing
}

// SetStockDescontar fija la cantidad a restar. Sin efecto en modo creación.
func (a *Adjustment) SetStockDescontar(d int) {
	if a.article == nil {
		return
	}
	a.stockDescontar = d
	a.state = StateEditing
}

func (a *Adjustment) Key() string         { return a.key }
func (a *Adjustment) IsEdit() bool        { return a.article != nil }
func (a *Adjustment) BaseStock() int      { return a.baseStock }
func (a *Adjustment) StockNuevo() int     { return a.stockNuevo }
func (a *Adjustment) StockDescontar() int { return a.stockDescontar }
func (a *Adjustment) State() State        { return a.state }

// Article devuelve la foto del artículo cargado (nil en modo creación).
func (a *Adjustment) Article() *entity.Article { return a.article }

// DerivedStock = base + stockNuevo − stockDescontar. Puede ser negativo mientras se edita;
// la validación del envío rechaza el valor final negativo. ok=false en modo creación.
func (a *Adjustment) DerivedStock() (stock int, ok bool) {
	if a.article == nil {
		return 0, false
	}
	return a.baseStock + a.stockNuevo - a.stockDescontar, true
}

// PlannedMovements devuelve los movimientos a registrar al enviar, en orden:
// primero el de stock nuevo, luego el de stock a descontar. Vacío en modo creación
// o si ambos campos valen 0.
func (a *Adjustment) PlannedMovements(userID string) []*entity.StockMovement {
	if a.article == nil {
		return nil
	}
	var out []*entity.StockMovement
	if a.stockNuevo != 0 {
		tipo := entity.MovementTipoEntrada
		if a.stockNuevo < 0 {
			tipo = entity.MovementTipoSalida
		}
		out = append(out, a.movement(tipo, a.stockNuevo, "nuevo", userID))
	}
	if a.stockDescontar != 0 {
		out = append(out, a.movement(entity.MovementTipoSalida, -abs(a.stockDescontar), "descontar", userID))
	}
	return out
}

// MarkSaved cierra la sesión tras persistir el artículo.
func (a *Adjustment) MarkSaved() {
	a.state = StateSaved
}

func (a *Adjustment) movement(tipo string, cantidad int, slot, userID string) *entity.StockMovement {
	m := &entity.StockMovement{
		CompanyID:    a.article.CompanyID,
		FkIDArticulo: a.article.ID,
		Origen:       entity.MovementOrigenAjuste,
		Tipo:         tipo,
		Cantidad:     cantidad,
		CreatedBy:    userID,
	}
	if a.key != "" {
		m.IdempotencyKey = a.article.CompanyID + ":" + strconv.FormatInt(a.article.ID, 10) + ":" + a.key + ":" + slot
	}
	return m
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
