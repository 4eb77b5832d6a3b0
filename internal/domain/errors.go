package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El texto de cada error viaja tal cual en errors[].message de la respuesta GraphQL;
// los clientes comparan contra estos mensajes, no cambiarlos.
var (
	ErrProductNotFound   = errors.New("Product not found")
	ErrWarehouseNotFound = errors.New("Warehouse not found")
	ErrWrongWarehouse    = errors.New("Product is not in the specified warehouse")
	ErrInvalidInput      = errors.New("Invalid input")
	ErrInvalidRange      = errors.New("Invalid KPI range")
)

// IsNotFound indica si err corresponde a un recurso inexistente (producto o bodega).
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrWarehouseNotFound)
}

// IsValidation indica si err es un error de entrada mal formada.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInvalidRange)
}
