package entity

import "strings"

// Product representa un producto del catálogo ubicado en una única bodega.
// Status no se almacena: se deriva de Stock y Demand en cada lectura.
type Product struct {
	ID        string
	Name      string
	SKU       string
	Warehouse string // código de bodega (FK a Warehouse.Code)
	Stock     int
	Demand    int
}

// Status etiqueta de salud de un producto.
type Status string

const (
	StatusHealthy  Status = "Healthy"
	StatusLow      Status = "Low"
	StatusCritical Status = "Critical"

	// StatusAll valor centinela de los filtros: desactiva el filtro por estado.
	StatusAll = "All"
)

// DeriveStatus calcula el estado a partir de stock y demanda.
// stock > demand -> Healthy; stock == demand -> Low; stock < demand -> Critical.
func DeriveStatus(stock, demand int) Status {
	switch {
	case stock > demand:
		return StatusHealthy
	case stock == demand:
		return StatusLow
	default:
		return StatusCritical
	}
}

// Status devuelve el estado derivado del producto.
func (p Product) Status() Status {
	return DeriveStatus(p.Stock, p.Demand)
}

// ParseStatus normaliza una etiqueta de estado (sin distinguir mayúsculas).
// Devuelve false si la etiqueta no corresponde a ningún estado conocido.
func ParseStatus(s string) (Status, bool) {
	for _, st := range []Status{StatusHealthy, StatusLow, StatusCritical} {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}
