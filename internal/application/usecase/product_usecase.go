package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/domain"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
)

// ProductUseCase consultas de productos: listado filtrado y paginado en servidor, y búsqueda por ID.
type ProductUseCase struct {
	repo repository.CatalogRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.CatalogRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List aplica el pipeline de consulta (búsqueda -> bodega -> estado -> página) sobre el catálogo actual.
// Páginas fuera de rango se ajustan, nunca fallan.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductQuery) (*dto.ProductPageResponse, error) {
	products, err := uc.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	page := inventory.Run(products, inventory.Query{
		Criteria: inventory.Criteria{
			Search:    q.Search,
			Warehouse: q.Warehouse,
			Status:    q.Status,
		},
		Page:     q.Page,
		PageSize: q.Limit,
	})

	items := make([]dto.ProductResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, *ToProductResponse(&p))
	}
	return &dto.ProductPageResponse{
		Products:        items,
		TotalCount:      page.TotalCount,
		CurrentPage:     page.CurrentPage,
		TotalPages:      page.TotalPages,
		HasNextPage:     page.HasNextPage,
		HasPreviousPage: page.HasPreviousPage,
	}, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToProductResponse(product), nil
}

// ToProductResponse convierte la entidad al DTO de salida, incluyendo el estado derivado.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Warehouse: p.Warehouse,
		Stock:     p.Stock,
		Demand:    p.Demand,
		Status:    string(p.Status()),
	}
}
