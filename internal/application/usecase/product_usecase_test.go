package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/usecase"
	"github.com/jhoicas/inventory-dashboard/internal/infrastructure/memory"
)

func TestProductUseCase_ListPaginaEnServidor(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewSeededCatalogStore())

	out, err := uc.List(context.Background(), dto.ProductQuery{Page: 2, Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, 12, out.TotalCount)
	assert.Equal(t, 3, out.TotalPages)
	assert.Equal(t, 2, out.CurrentPage)
	assert.True(t, out.HasNextPage)
	assert.True(t, out.HasPreviousPage)
	require.Len(t, out.Products, 5)
	assert.Equal(t, "P-1006", out.Products[0].ID)
}

func TestProductUseCase_ListFiltraYDerivaEstado(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewSeededCatalogStore())

	out, err := uc.List(context.Background(), dto.ProductQuery{
		Warehouse: "DEL-B",
		Status:    "Critical",
		Page:      1,
		Limit:     10,
	})
	require.NoError(t, err)

	require.Len(t, out.Products, 3)
	for _, p := range out.Products {
		assert.Equal(t, "DEL-B", p.Warehouse)
		assert.Equal(t, "Critical", p.Status)
	}
}

func TestProductUseCase_GetByID(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewSeededCatalogStore())

	p, err := uc.GetByID(context.Background(), "P-1003")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "M8 Nut", p.Name)
	assert.Equal(t, "Low", p.Status)

	p, err = uc.GetByID(context.Background(), "P-0000")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestWarehouseUseCase_List(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(memory.NewSeededCatalogStore())

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 6)
	assert.Equal(t, dto.WarehouseResponse{Code: "LAX-A", Name: "Los Angeles A", City: "Los Angeles", Country: "USA"}, out[0])
}
