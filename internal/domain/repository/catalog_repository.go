package repository

import (
	"context"

	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

// CatalogRepository define el puerto del catálogo de productos y bodegas (DIP).
// Es la única fuente de verdad; solo UpdateProduct modifica estado.
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	// UpdateProduct ejecuta fn sobre el producto de forma atómica respecto a otras
	// escrituras. Si fn devuelve error no se aplica ningún cambio.
	UpdateProduct(ctx context.Context, id string, fn func(p *entity.Product) error) (*entity.Product, error)
	ListWarehouses(ctx context.Context) ([]entity.Warehouse, error)
	GetWarehouse(ctx context.Context, code string) (*entity.Warehouse, error)
}
