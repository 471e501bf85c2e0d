package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArticleFormRequest body del formulario de artículo (POST crea, PUT edita).
// En edición, stock se ignora: se recalcula como base_stock + stock_nuevo − stock_descontar.
type ArticleFormRequest struct {
	Descripcion    string     `json:"descripcion"`
	PrecioUnitario FlexNumber `json:"precio_unitario" swaggertype:"string"`
	FkIDAgrupador  FlexNumber `json:"fk_id_agrupador" swaggertype:"string"`
	FkIDMarca      FlexNumber `json:"fk_id_marca" swaggertype:"string"`
	FkIDTalle      FlexNumber `json:"fk_id_talle" swaggertype:"string"`
	FkIDColor      FlexNumber `json:"fk_id_color" swaggertype:"string"`
	Activo         *bool      `json:"activo"`
	Stock          FlexNumber `json:"stock" swaggertype:"string"`
	StockNuevo     FlexNumber `json:"stock_nuevo" swaggertype:"string"`
	StockDescontar FlexNumber `json:"stock_descontar" swaggertype:"string"`
	BaseStock      *int       `json:"base_stock,omitempty"` // foto del stock que vio el cliente; vacío = stock actual
}

// ArticleResponse salida de un artículo.
type ArticleResponse struct {
	ID             int64           `json:"id"`
	Descripcion    string          `json:"descripcion"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Stock          int             `json:"stock"`
	FkIDAgrupador  int64           `json:"fk_id_agrupador"`
	FkIDMarca      *int64          `json:"fk_id_marca"`
	FkIDTalle      *int64          `json:"fk_id_talle"`
	FkIDColor      *int64          `json:"fk_id_color"`
	Activo         bool            `json:"activo"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ArticleListResponse lista paginada de artículos.
type ArticleListResponse struct {
	Items []ArticleResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// StockMovementResponse salida de un movimiento de stock.
type StockMovementResponse struct {
	ID           int64     `json:"id"`
	FkIDOrden    *int64    `json:"fk_id_orden"`
	FkIDArticulo int64     `json:"fk_id_articulos"`
	Origen       string    `json:"origen"`
	Tipo         string    `json:"tipo"`
	Cantidad     int       `json:"cantidad"`
	CreatedAt    time.Time `json:"created_at"`
}

// ArticleSaveResponse resultado de enviar el formulario: artículo final y movimientos registrados.
type ArticleSaveResponse struct {
	Article   ArticleResponse         `json:"article"`
	Movements []StockMovementResponse `json:"movements"`
}
