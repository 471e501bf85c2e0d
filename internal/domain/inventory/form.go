package inventory

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/faro-api/internal/domain"
	"github.com/jhoicas/faro-api/internal/domain/entity"
)

// Mensajes de validación del formulario de artículo.
const (
	MsgDescripcionRequerida = "La descripción es requerida"
	MsgPrecioInvalido       = "El precio debe ser mayor o igual a 0"
	MsgAgrupadorRequerido   = "El agrupador es requerido"
	MsgStockInvalido        = "El stock debe ser mayor o igual a 0"
	MsgStockNoEntero        = "El stock debe ser un número entero"
	MsgReferenciaInvalida   = "Referencia inválida"
	MsgCantidadInvalida     = "La cantidad debe ser un número entero"
	MsgStockFueraDeRango    = "El stock supera el máximo permitido"
	MsgCantidadFueraDeRango = "La cantidad supera el máximo permitido"
)

// Las columnas de stock y cantidad son INTEGER.
var (
	maxCantidad = decimal.NewFromInt(math.MaxInt32)
	maxRef      = decimal.NewFromInt(math.MaxInt64)
)

// FormValues son los valores crudos del formulario de artículo. Los campos numéricos
// llegan como texto sin importar si el cliente los tipeó como string o como número.
type FormValues struct {
	Descripcion    string
	PrecioUnitario string
	FkIDAgrupador  string
	FkIDMarca      string // "" = sin marca
	FkIDTalle      string
	FkIDColor      string
	Activo         bool
	Stock          string
}

// ValidateForm aplica la guarda de envío completa: ValidateFields más la existencia
// del agrupador en la lista cargada.
func ValidateForm(v FormValues, agrupadores []entity.Agrupador) (*entity.Article, error) {
	article, err := ValidateFields(v)
	if err != nil {
		return nil, err
	}
	if err := CheckAgrupador(article.FkIDAgrupador, agrupadores); err != nil {
		return nil, err
	}
	return article, nil
}

// ValidateFields valida los campos sin I/O y devuelve el artículo con los campos numéricos
// normalizados. Devuelve *domain.ValidationError con un mensaje por campo inválido;
// no clampa valores negativos.
func ValidateFields(v FormValues) (*entity.Article, error) {
	verr := domain.NewValidationError()
	out := &entity.Article{Activo: v.Activo}

	out.Descripcion = v.Descripcion
	if strings.TrimSpace(v.Descripcion) == "" {
		verr.Add("descripcion", MsgDescripcionRequerida)
	}

	precio, err := ParseNumber(v.PrecioUnitario)
	if err != nil || precio.IsNegative() {
		verr.Add("precio_unitario", MsgPrecioInvalido)
	} else {
		out.PrecioUnitario = precio
	}

	agrupador, err := ParseNumber(v.FkIDAgrupador)
	if err != nil || !agrupador.IsInteger() || agrupador.LessThan(decimal.NewFromInt(1)) || agrupador.GreaterThan(maxRef) {
		verr.Add("fk_id_agrupador", MsgAgrupadorRequerido)
	} else {
		out.FkIDAgrupador = agrupador.IntPart()
	}

	out.FkIDMarca = parseRef("fk_id_marca", v.FkIDMarca, verr)
	out.FkIDTalle = parseRef("fk_id_talle", v.FkIDTalle, verr)
	out.FkIDColor = parseRef("fk_id_color", v.FkIDColor, verr)

	stock, err := ParseNumber(v.Stock)
	switch {
	case err != nil || stock.IsNegative():
		verr.Add("stock", MsgStockInvalido)
	case !stock.IsInteger():
		verr.Add("stock", MsgStockNoEntero)
	case stock.GreaterThan(maxCantidad):
		verr.Add("stock", MsgStockFueraDeRango)
	default:
		out.Stock = int(stock.IntPart())
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return out, nil
}

// CheckAgrupador exige que id esté en la lista de agrupadores de la empresa.
func CheckAgrupador(id int64, agrupadores []entity.Agrupador) error {
	if hasAgrupador(agrupadores, id) {
		return nil
	}
	verr := domain.NewValidationError()
	verr.Add("fk_id_agrupador", MsgAgrupadorRequerido)
	return verr
}

// ParseNumber convierte el texto de un campo numérico. Texto vacío equivale a 0,
// igual que un input numérico vacío del formulario.
func ParseNumber(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// ParseQuantity convierte un campo de ajuste (stock nuevo / a descontar) a entero.
// Registra el error en verr con la clave field.
func ParseQuantity(field, raw string, verr *domain.ValidationError) int {
	n, err := ParseNumber(raw)
	if err != nil || !n.IsInteger() {
		verr.Add(field, MsgCantidadInvalida)
		return 0
	}
	if n.Abs().GreaterThan(maxCantidad) {
		verr.Add(field, MsgCantidadFueraDeRango)
		return 0
	}
	return int(n.IntPart())
}

func parseRef(field, raw string, verr *domain.ValidationError) *int64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	n, err := decimal.NewFromString(s)
	if err != nil || !n.IsInteger() || n.Abs().GreaterThan(maxRef) {
		verr.Add(field, MsgReferenciaInvalida)
		return nil
	}
	id := n.IntPart()
	return &id
}

func hasAgrupador(list []entity.Agrupador, id int64) bool {
	for _, a := range list {
		if a.ID == id {
			return true
		}
	}
	return false
}
