package client

import (
	"context"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
)

const productFields = `id name sku warehouse stock demand status`

const (
	productsQuery = `query Products($search: String, $warehouse: String, $status: String, $page: Int, $limit: Int) {
  products(search: $search, warehouse: $warehouse, status: $status, page: $page, limit: $limit) {
    totalCount currentPage totalPages hasNextPage hasPreviousPage
    products { ` + productFields + ` }
  }
}`
	warehousesQuery = `query { warehouses { code name city country } }`
	kpisQuery       = `query KPIs($range: String!) { kpis(range: $range) { date label stock demand } }`
	summaryQuery    = `query { summary { totalStock totalDemand fillRate } }`

	updateDemandMutation = `mutation UpdateDemand($id: ID!, $demand: Int!) {
  updateDemand(id: $id, demand: $demand) { ` + productFields + ` }
}`
	transferStockMutation = `mutation TransferStock($id: ID!, $quantity: Int!, $from: String!, $to: String!) {
  transferStock(id: $id, quantity: $quantity, fromWarehouse: $from, toWarehouse: $to) { ` + productFields + ` }
}`
)

// ProductsParams filtros y página de Products. Campos vacíos o cero usan los valores del servidor.
type ProductsParams struct {
	Search    string
	Warehouse string
	Status    string
	Page      int
	Limit     int
}

func (p ProductsParams) variables() map[string]interface{} {
	vars := map[string]interface{}{}
	if p.Search != "" {
		vars["search"] = p.Search
	}
	if p.Warehouse != "" {
		vars["warehouse"] = p.Warehouse
	}
	if p.Status != "" {
		vars["status"] = p.Status
	}
	if p.Page > 0 {
		vars["page"] = p.Page
	}
	if p.Limit > 0 {
		vars["limit"] = p.Limit
	}
	return vars
}

// Summary tarjetas del dashboard tal como llegan por la red.
type Summary struct {
	TotalStock  int     `json:"totalStock"`
	TotalDemand int     `json:"totalDemand"`
	FillRate    float64 `json:"fillRate"`
}

// Products una página de productos; el servidor filtra y pagina.
func (c *Client) Products(ctx context.Context, p ProductsParams) (*dto.ProductPageResponse, error) {
	var out struct {
		Products dto.ProductPageResponse `json:"products"`
	}
	if err := c.do(ctx, productsQuery, p.variables(), &out); err != nil {
		return nil, err
	}
	return &out.Products, nil
}

// AllProducts recorre todas las páginas sin filtros.
func (c *Client) AllProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	var all []dto.ProductResponse
	for page := 1; ; page++ {
		res, err := c.Products(ctx, ProductsParams{Page: page, Limit: allPageSize})
		if err != nil {
			return nil, err
		}
		all = append(all, res.Products...)
		if !res.HasNextPage {
			return all, nil
		}
	}
}

// Warehouses lista de bodegas.
func (c *Client) Warehouses(ctx context.Context) ([]dto.WarehouseResponse, error) {
	var out struct {
		Warehouses []dto.WarehouseResponse `json:"warehouses"`
	}
	if err := c.do(ctx, warehousesQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.Warehouses, nil
}

// KPIs serie de tendencia para el rango indicado ("7d", "30d", ...).
func (c *Client) KPIs(ctx context.Context, rangeSpec string) ([]dto.KPIPointDTO, error) {
	var out struct {
		KPIs []dto.KPIPointDTO `json:"kpis"`
	}
	if err := c.do(ctx, kpisQuery, map[string]interface{}{"range": rangeSpec}, &out); err != nil {
		return nil, err
	}
	return out.KPIs, nil
}

// Summary totales y fill rate actuales.
func (c *Client) Summary(ctx context.Context) (*Summary, error) {
	var out struct {
		Summary Summary `json:"summary"`
	}
	if err := c.do(ctx, summaryQuery, nil, &out); err != nil {
		return nil, err
	}
	return &out.Summary, nil
}

// UpdateDemand fija la demanda de un producto.
func (c *Client) UpdateDemand(ctx context.Context, id string, demand int) (*dto.ProductResponse, error) {
	var out struct {
		Product dto.ProductResponse `json:"updateDemand"`
	}
	vars := map[string]interface{}{"id": id, "demand": demand}
	if err := c.do(ctx, updateDemandMutation, vars, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

// TransferStock mueve el producto de una bodega a otra.
func (c *Client) TransferStock(ctx context.Context, in dto.TransferStockRequest) (*dto.ProductResponse, error) {
	var out struct {
		Product dto.ProductResponse `json:"transferStock"`
	}
	vars := map[string]interface{}{
		"id":       in.ID,
		"quantity": in.Quantity,
		"from":     in.FromWarehouse,
		"to":       in.ToWarehouse,
	}
	if err := c.do(ctx, transferStockMutation, vars, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}
