package dto

// Valores por defecto de paginación del listado de productos.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)
