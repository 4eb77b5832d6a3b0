// Package inventory contiene la lógica pura de consulta del catálogo: filtros,
// derivación de estado y paginación. La usan tanto el servidor como las vistas
// previas del cliente, para que ambos lados no diverjan.
package inventory

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

// AllWarehouses valor centinela que desactiva el filtro por bodega.
const AllWarehouses = "All"

// Criteria filtros opcionales. Campos vacíos (o "All") no filtran.
type Criteria struct {
	Search    string
	Warehouse string
	Status    string
}

// Query criterios más parámetros de página.
type Query struct {
	Criteria
	Page     int
	PageSize int
}

// Page resultado paginado con metadatos.
type Page struct {
	Items           []entity.Product
	TotalCount      int
	CurrentPage     int
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
}

// Run aplica Filter y luego Paginate. Función pura: no modifica products.
func Run(products []entity.Product, q Query) Page {
	return Paginate(Filter(products, q.Criteria), q.Page, q.PageSize)
}

// Filter aplica, en orden, búsqueda, bodega y estado. Conserva el orden de entrada.
func Filter(products []entity.Product, c Criteria) []entity.Product {
	term := fold(c.Search)
	warehouse := c.Warehouse
	if warehouse == AllWarehouses {
		warehouse = ""
	}

	var (
		statusOn bool
		status   entity.Status
		noMatch  bool
	)
	if c.Status != "" && c.Status != entity.StatusAll {
		statusOn = true
		var ok bool
		status, ok = entity.ParseStatus(c.Status)
		noMatch = !ok
	}

	out := make([]entity.Product, 0, len(products))
	if noMatch {
		return out
	}
	for _, p := range products {
		if !matchesSearch(p, term) {
			continue
		}
		if warehouse != "" && p.Warehouse != warehouse {
			continue
		}
		if statusOn && p.Status() != status {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Paginate recorta products a la página pedida. page fuera de rango se ajusta a
// [1, max(1, totalPages)]; pageSize <= 0 produce una página vacía con totalPages = 0.
func Paginate(products []entity.Product, page, pageSize int) Page {
	total := len(products)
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	current := page
	if current > totalPages {
		current = totalPages
	}
	if current < 1 {
		current = 1
	}

	items := []entity.Product{}
	if totalPages > 0 {
		start := (current - 1) * pageSize
		end := start + pageSize
		if end > total {
			end = total
		}
		items = append(items, products[start:end]...)
	}

	return Page{
		Items:           items,
		TotalCount:      total,
		CurrentPage:     current,
		TotalPages:      totalPages,
		HasNextPage:     current < totalPages,
		HasPreviousPage: current > 1,
	}
}

func matchesSearch(p entity.Product, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(fold(p.Name), term) ||
		strings.Contains(fold(p.SKU), term) ||
		strings.Contains(fold(p.ID), term)
}

// fold aplica case folding Unicode. cases.Caser no es seguro entre goroutines,
// por eso se crea uno por llamada.
func fold(s string) string {
	if s == "" {
		return s
	}
	return cases.Fold().String(s)
}
