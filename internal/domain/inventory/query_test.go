package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/inventory"
)

func catalog() []entity.Product {
	return []entity.Product{
		{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", Warehouse: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", Warehouse: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", Warehouse: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1004", Name: "Bearing 608ZZ", SKU: "BRG-608-50", Warehouse: "DEL-B", Stock: 24, Demand: 120},
		{ID: "P-1005", Name: "Spring Pin", SKU: "SPP-04-150", Warehouse: "BLR-A", Stock: 300, Demand: 250},
		{ID: "P-1007", Name: "Locknut M6", SKU: "LKN-06-400", Warehouse: "PNQ-C", Stock: 120, Demand: 120},
		{ID: "P-1012", Name: "Ceramic Insulator", SKU: "INS-CE-020", Warehouse: "DEL-B", Stock: 70, Demand: 70},
	}
}

func ids(products []entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter_BusquedaSinDistinguirMayusculas(t *testing.T) {
	got := inventory.Filter(catalog(), inventory.Criteria{Search: "bolt"})
	assert.Equal(t, []string{"P-1001"}, ids(got))

	got = inventory.Filter(catalog(), inventory.Criteria{Search: "wsr"})
	assert.Equal(t, []string{"P-1002"}, ids(got), "debe buscar también por SKU")

	got = inventory.Filter(catalog(), inventory.Criteria{Search: "p-1004"})
	assert.Equal(t, []string{"P-1004"}, ids(got), "debe buscar también por ID")
}

func TestFilter_BusquedaVaciaDevuelveTodo(t *testing.T) {
	got := inventory.Filter(catalog(), inventory.Criteria{Search: ""})
	assert.Len(t, got, len(catalog()))
}

func TestFilter_BusquedaSeUsaTalCual(t *testing.T) {
	tests := []struct {
		search string
		want   []string
	}{
		{"   ", []string{}},
		{" bolt ", []string{}},
		{"hex bolt", []string{"P-1001"}},
		{"12mm ", []string{"P-1001"}},
		{" nut", []string{"P-1003"}},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			got := inventory.Filter(catalog(), inventory.Criteria{Search: tt.search})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_Bodega(t *testing.T) {
	got := inventory.Filter(catalog(), inventory.Criteria{Warehouse: "PNQ-C"})
	assert.Equal(t, []string{"P-1003", "P-1007"}, ids(got))

	got = inventory.Filter(catalog(), inventory.Criteria{Warehouse: inventory.AllWarehouses})
	assert.Len(t, got, len(catalog()))
}

func TestFilter_Estado(t *testing.T) {
	tests := []struct {
		status string
		want   []string
	}{
		{"Healthy", []string{"P-1001", "P-1005"}},
		{"Low", []string{"P-1003", "P-1007", "P-1012"}},
		{"critical", []string{"P-1002", "P-1004"}},
		{"All", ids(catalog())},
		{"", ids(catalog())},
		{"Unknown", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got := inventory.Filter(catalog(), inventory.Criteria{Status: tt.status})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_CombinacionCumpleTodosLosPredicados(t *testing.T) {
	searches := []string{"", "n", "bolt", "08"}
	warehouses := []string{"", "All", "BLR-A", "PNQ-C", "DEL-B", "XXX"}
	statuses := []string{"", "All", "Healthy", "Low", "Critical"}

	all := catalog()
	for _, s := range searches {
		for _, w := range warehouses {
			for _, st := range statuses {
				got := inventory.Filter(all, inventory.Criteria{Search: s, Warehouse: w, Status: st})
				require.LessOrEqual(t, len(got), len(all))
				for _, p := range got {
					if w != "" && w != "All" {
						assert.Equal(t, w, p.Warehouse)
					}
					if st != "" && st != "All" {
						assert.Equal(t, entity.Status(st), p.Status())
					}
				}
			}
		}
	}
}

func TestPaginate_SumaDePaginasIgualATotal(t *testing.T) {
	all := catalog()
	for size := 1; size <= len(all)+1; size++ {
		first := inventory.Paginate(all, 1, size)
		sum := 0
		for page := 1; page <= first.TotalPages; page++ {
			sum += len(inventory.Paginate(all, page, size).Items)
		}
		assert.Equal(t, len(all), sum, "pageSize=%d", size)
	}
}

func TestPaginate_AjustaPaginaFueraDeRango(t *testing.T) {
	all := catalog()

	p := inventory.Paginate(all, 99, 3)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 3, p.CurrentPage)
	assert.Equal(t, []string{"P-1012"}, ids(p.Items))
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPreviousPage)

	p = inventory.Paginate(all, -4, 3)
	assert.Equal(t, 1, p.CurrentPage)
	assert.True(t, p.HasNextPage)
	assert.False(t, p.HasPreviousPage)
	assert.Equal(t, []string{"P-1001", "P-1002", "P-1003"}, ids(p.Items))
}

func TestPaginate_PageSizeInvalido(t *testing.T) {
	p := inventory.Paginate(catalog(), 2, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Empty(t, p.Items)
	assert.Equal(t, len(catalog()), p.TotalCount)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPreviousPage)
}

func TestPaginate_ConjuntoVacio(t *testing.T) {
	p := inventory.Paginate(nil, 3, 10)
	assert.Equal(t, 0, p.TotalCount)
	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, 1, p.CurrentPage)
	assert.NotNil(t, p.Items)
}

func TestRun_FiltraYPagina(t *testing.T) {
	p := inventory.Run(catalog(), inventory.Query{
		Criteria: inventory.Criteria{Warehouse: "BLR-A"},
		Page:     2,
		PageSize: 2,
	})
	assert.Equal(t, 3, p.TotalCount)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, []string{"P-1005"}, ids(p.Items))
}

func TestRun_NoModificaEntrada(t *testing.T) {
	all := catalog()
	_ = inventory.Run(all, inventory.Query{Criteria: inventory.Criteria{Status: "Low"}, Page: 1, PageSize: 1})
	assert.Equal(t, catalog(), all)
}
