package usecase

import (
	"context"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
)

// WarehouseUseCase lectura de bodegas (inmutables en este sistema).
type WarehouseUseCase struct {
	repo repository.CatalogRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.CatalogRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// List lista todas las bodegas.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.ListWarehouses(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, toWarehouseResponse(w))
	}
	return items, nil
}

func toWarehouseResponse(w entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		Code:    w.Code,
		Name:    w.Name,
		City:    w.City,
		Country: w.Country,
	}
}
