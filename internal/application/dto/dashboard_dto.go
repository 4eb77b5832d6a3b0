package dto

import "github.com/shopspring/decimal"

// KPIPointDTO punto de la serie de tendencia stock vs. demanda.
type KPIPointDTO struct {
	Date   string `json:"date"`  // YYYY-MM-DD
	Label  string `json:"label"` // etiqueta corta para el eje, ej: "Jan 2"
	Stock  int    `json:"stock"`
	Demand int    `json:"demand"`
}

// DashboardSummaryDTO tarjetas del dashboard calculadas sobre el catálogo actual.
type DashboardSummaryDTO struct {
	TotalStock  int             `json:"totalStock"`
	TotalDemand int             `json:"totalDemand"`
	FillRate    decimal.Decimal `json:"fillRate"` // % de demanda cubierta, un decimal
}
