package dto

// ProductQuery filtros y página pedidos por el cliente. Vacío o "All" desactiva un filtro.
type ProductQuery struct {
	Search    string
	Warehouse string
	Status    string
	Page      int
	Limit     int
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Warehouse string `json:"warehouse"`
	Stock     int    `json:"stock"`
	Demand    int    `json:"demand"`
	Status    string `json:"status"`
}

// ProductPageResponse página de productos con metadatos de paginación.
type ProductPageResponse struct {
	Products        []ProductResponse `json:"products"`
	TotalCount      int               `json:"totalCount"`
	CurrentPage     int               `json:"currentPage"`
	TotalPages      int               `json:"totalPages"`
	HasNextPage     bool              `json:"hasNextPage"`
	HasPreviousPage bool              `json:"hasPreviousPage"`
}

// UpdateDemandRequest entrada de la mutación updateDemand.
// Un ID vacío o desconocido termina en ErrProductNotFound; Demand no se valida en signo ni magnitud.
type UpdateDemandRequest struct {
	ID     string `json:"id"`
	Demand int    `json:"demand"`
}

// TransferStockRequest entrada de la mutación transferStock.
// Quantity se acepta pero no se aplica: la transferencia mueve el registro completo.
// ID y FromWarehouse se comparan tal cual contra el catálogo; solo el destino se valida.
type TransferStockRequest struct {
	ID            string `json:"id"`
	Quantity      int    `json:"quantity"`
	FromWarehouse string `json:"fromWarehouse"`
	ToWarehouse   string `json:"toWarehouse" validate:"required,code"`
}
