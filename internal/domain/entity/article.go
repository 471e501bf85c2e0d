package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Article representa un artículo vendible (producto) de la empresa.
// Stock es la fuente de verdad durable: solo cambia vía actualización persistida o movimientos registrados.
type Article struct {
	ID             int64
	CompanyID      string
	Descripcion    string
	PrecioUnitario decimal.Decimal
	Stock          int
	FkIDAgrupador  int64
	FkIDMarca      *int64 // nil = sin marca
	FkIDTalle      *int64
	FkIDColor      *int64
	Activo         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SameFields informa si dos artículos tienen los mismos valores editables (ignora ID y timestamps).
func (a *Article) SameFields(o *Article) bool {
	if a == nil || o == nil {
		return a == o
	}
	return a.Descripcion == o.Descripcion &&
		a.PrecioUnitario.Equal(o.PrecioUnitario) &&
		a.Stock == o.Stock &&
		a.FkIDAgrupador == o.FkIDAgrupador &&
		sameRef(a.FkIDMarca, o.FkIDMarca) &&
		sameRef(a.FkIDTalle, o.FkIDTalle) &&
		sameRef(a.FkIDColor, o.FkIDColor) &&
		a.Activo == o.Activo
}

func sameRef(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
