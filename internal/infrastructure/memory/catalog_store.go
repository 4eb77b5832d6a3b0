// Package memory implementa el catálogo en memoria del proceso. El estado se
// pierde al reiniciar.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/inventory-dashboard/internal/domain"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogStore)(nil)

// CatalogStore implementación del puerto CatalogRepository protegida por un RWMutex.
// Las lecturas devuelven copias; nadie fuera del store retiene punteros internos.
type CatalogStore struct {
	mu         sync.RWMutex
	products   []entity.Product
	index      map[string]int // id -> posición en products
	warehouses []entity.Warehouse
	whIndex    map[string]int
}

// NewCatalogStore construye el store con los datos dados. Falla si hay IDs o
// códigos duplicados, o si un producto apunta a una bodega inexistente.
func NewCatalogStore(warehouses []entity.Warehouse, products []entity.Product) (*CatalogStore, error) {
	s := &CatalogStore{
		products:   make([]entity.Product, 0, len(products)),
		index:      make(map[string]int, len(products)),
		warehouses: make([]entity.Warehouse, 0, len(warehouses)),
		whIndex:    make(map[string]int, len(warehouses)),
	}
	for _, w := range warehouses {
		if _, dup := s.whIndex[w.Code]; dup {
			return nil, fmt.Errorf("bodega duplicada %q", w.Code)
		}
		s.whIndex[w.Code] = len(s.warehouses)
		s.warehouses = append(s.warehouses, w)
	}
	for _, p := range products {
		if _, dup := s.index[p.ID]; dup {
			return nil, fmt.Errorf("producto duplicado %q", p.ID)
		}
		if _, ok := s.whIndex[p.Warehouse]; !ok {
			return nil, fmt.Errorf("producto %q: %w: %s", p.ID, domain.ErrWarehouseNotFound, p.Warehouse)
		}
		s.index[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}
	return s, nil
}

// NewSeededCatalogStore construye el store con los datos semilla del dashboard.
func NewSeededCatalogStore() *CatalogStore {
	s, err := NewCatalogStore(SeedWarehouses(), SeedProducts())
	if err != nil {
		// los datos semilla son estáticos; un error aquí es un bug de programación
		panic(err)
	}
	return s
}

// ListProducts devuelve una copia de todos los productos en orden de carga.
func (s *CatalogStore) ListProducts(ctx context.Context) ([]entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// GetProduct obtiene un producto por ID.
func (s *CatalogStore) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p := s.products[i]
	return &p, nil
}

// UpdateProduct aplica fn sobre una copia bajo el lock de escritura y solo
// guarda el resultado si fn no devuelve error. El ID no puede cambiar.
func (s *CatalogStore) UpdateProduct(ctx context.Context, id string, fn func(p *entity.Product) error) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p := s.products[i]
	if err := fn(&p); err != nil {
		return nil, err
	}
	p.ID = id
	s.products[i] = p
	return &p, nil
}

// ListWarehouses devuelve una copia de las bodegas en orden de carga.
func (s *CatalogStore) ListWarehouses(ctx context.Context) ([]entity.Warehouse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Warehouse, len(s.warehouses))
	copy(out, s.warehouses)
	return out, nil
}

// GetWarehouse obtiene una bodega por código.
func (s *CatalogStore) GetWarehouse(ctx context.Context, code string) (*entity.Warehouse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.whIndex[code]
	if !ok {
		return nil, domain.ErrWarehouseNotFound
	}
	w := s.warehouses[i]
	return &w, nil
}
