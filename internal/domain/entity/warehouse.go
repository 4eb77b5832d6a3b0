package entity

// Warehouse representa una bodega. Inmutable: se carga al arrancar y nunca se modifica.
type Warehouse struct {
	Code    string // clave primaria
	Name    string
	City    string
	Country string
}
