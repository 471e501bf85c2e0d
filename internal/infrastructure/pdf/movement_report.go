// Package pdf genera el reporte de movimientos de stock (kardex) de un artículo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Descripción + ID    │  Stock actual + Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Origen | Cantidad | Usuario          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Entradas / Salidas / Neto                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/faro-api/internal/application/articles"
	"github.com/jhoicas/faro-api/internal/domain/entity"
)

var _ articles.MovementReportGenerator = (*MovementReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 1, Green: 16, Blue: 49}
	colorAccent  = &props.Color{Red: 0, Green: 173, Blue: 222}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MovementReportGenerator implementa articles.MovementReportGenerator usando Maroto v2.
type MovementReportGenerator struct {
	now func() time.Time
}

func NewMovementReportGenerator() *MovementReportGenerator {
	return &MovementReportGenerator{now: time.Now}
}

// GenerateMovementReport genera el PDF y devuelve sus bytes. movements se listan en el
// orden recibido (el repositorio los entrega más recientes primero).
func (g *MovementReportGenerator) GenerateMovementReport(
	_ context.Context,
	article *entity.Article,
	movements []*entity.StockMovement,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Movimientos de stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(article, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorAccent, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	if len(movements) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos registrados", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	m.AddRows(tableRows(movements)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorAccent, Thickness: 0.3}))
	m.AddRows(totalsRow(movements))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(a *entity.Article, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(a.Descripcion, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Artículo #%d   |   Precio unitario: $%s", a.ID, formatMoney(a.PrecioUnitario.StringFixed(0))),
				props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("STOCK ACTUAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(strconv.Itoa(a.Stock), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Generado: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Tipo", 2, align.Center),
		h("Origen", 2, align.Center),
		h("Cantidad", 2, align.Right),
		h("Usuario", 3, align.Left),
	)
}

func tableRows(movements []*entity.StockMovement) []core.Row {
	out := make([]core.Row, 0, len(movements))
	for _, mv := range movements {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		out = append(out, row.New(6).Add(
			cell(mv.CreatedAt.Format("02/01/2006 15:04"), 3, align.Left),
			cell(strings.ToUpper(mv.Tipo), 2, align.Center),
			cell(mv.Origen, 2, align.Center),
			cell(signed(mv.Cantidad), 2, align.Right),
			cell(nonEmpty(mv.CreatedBy, "—"), 3, align.Left),
		))
	}
	return out
}

func totalsRow(movements []*entity.StockMovement) core.Row {
	var in, out int
	for _, mv := range movements {
		if mv.Cantidad > 0 {
			in += mv.Cantidad
		} else {
			out += mv.Cantidad
		}
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(label("Entradas:"), label("Salidas:"), label("Neto:")),
		col.New(3).Add(value(signed(in)), value(signed(out)), value(signed(in+out))),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1000000" → "-1.000.000"
func formatMoney(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
