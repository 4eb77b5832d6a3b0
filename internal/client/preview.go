package client

import (
	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/usecase"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/inventory"
)

// Preview filtra y pagina localmente productos ya descargados, con la misma
// función que usa el servidor. El estado se recalcula desde stock y demanda.
func Preview(products []dto.ProductResponse, c inventory.Criteria, page, pageSize int) *dto.ProductPageResponse {
	items := make([]entity.Product, len(products))
	for i, p := range products {
		items[i] = entity.Product{
			ID:        p.ID,
			Name:      p.Name,
			SKU:       p.SKU,
			Warehouse: p.Warehouse,
			Stock:     p.Stock,
			Demand:    p.Demand,
		}
	}

	res := inventory.Run(items, inventory.Query{Criteria: c, Page: page, PageSize: pageSize})
	out := &dto.ProductPageResponse{
		Products:        make([]dto.ProductResponse, 0, len(res.Items)),
		TotalCount:      res.TotalCount,
		CurrentPage:     res.CurrentPage,
		TotalPages:      res.TotalPages,
		HasNextPage:     res.HasNextPage,
		HasPreviousPage: res.HasPreviousPage,
	}
	for i := range res.Items {
		out.Products = append(out.Products, *usecase.ToProductResponse(&res.Items[i]))
	}
	return out
}
