package entity

// Agrupador es la categoría de agrupación de artículos.
type Agrupador struct {
	ID     int64
	Nombre string
}

// Marca de un artículo.
type Marca struct {
	ID          int64
	Descripcion string
}

// TipoGasto clasifica los gastos de empleados.
type TipoGasto struct {
	ID          int64
	Descripcion string
}
