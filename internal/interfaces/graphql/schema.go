// Package graphql define el esquema GraphQL del dashboard y sus resolvers.
// Los resolvers solo adaptan argumentos y delegan en los casos de uso.
package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/jhoicas/inventory-dashboard/internal/application/analytics"
	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/application/usecase"
)

// Deps casos de uso que respaldan el esquema.
type Deps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	StockUC     *inventory.StockUseCase
	KPIUC       *analytics.KPIUseCase
}

// RootFields campos raíz del esquema (etiquetas válidas para métricas).
var RootFields = map[string]struct{}{
	"products": {}, "product": {}, "warehouses": {}, "kpis": {}, "summary": {},
	"updateDemand": {}, "transferStock": {},
}

var warehouseType = gql.NewObject(gql.ObjectConfig{
	Name: "Warehouse",
	Fields: gql.Fields{
		"code":    &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"name":    &gql.Field{Type: gql.NewNonNull(gql.String)},
		"city":    &gql.Field{Type: gql.NewNonNull(gql.String)},
		"country": &gql.Field{Type: gql.NewNonNull(gql.String)},
	},
})

var productType = gql.NewObject(gql.ObjectConfig{
	Name: "Product",
	Fields: gql.Fields{
		"id":        &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"name":      &gql.Field{Type: gql.NewNonNull(gql.String)},
		"sku":       &gql.Field{Type: gql.NewNonNull(gql.String)},
		"warehouse": &gql.Field{Type: gql.NewNonNull(gql.String)},
		"stock":     &gql.Field{Type: gql.NewNonNull(gql.Int)},
		"demand":    &gql.Field{Type: gql.NewNonNull(gql.Int)},
		"status": &gql.Field{
			Type:        gql.NewNonNull(gql.String),
			Description: "Healthy (stock > demand), Low (stock == demand) o Critical (stock < demand).",
		},
	},
})

var productPageType = gql.NewObject(gql.ObjectConfig{
	Name: "ProductPage",
	Fields: gql.Fields{
		"products":        &gql.Field{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(productType)))},
		"totalCount":      &gql.Field{Type: gql.NewNonNull(gql.Int)},
		"currentPage":     &gql.Field{Type: gql.NewNonNull(gql.Int)},
		"totalPages":      &gql.Field{Type: gql.NewNonNull(gql.Int)},
		"hasNextPage":     &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
		"hasPreviousPage": &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
	},
})

var kpiType = gql.NewObject(gql.ObjectConfig{
	Name:        "KPI",
	Description: "Punto sintético de la tendencia; solo el día actual refleja datos reales.",
	Fields: gql.Fields{
		"date":   &gql.Field{Type: gql.NewNonNull(gql.String)},
		"label":  &gql.Field{Type: gql.NewNonNull(gql.String)},
		"stock":  &gql.Field{Type: gql.NewNonNull(gql.Int)},
		"demand": &gql.Field{Type: gql.NewNonNull(gql.Int)},
	},
})

var summaryType = gql.NewObject(gql.ObjectConfig{
	Name: "Summary",
	Fields: gql.Fields{
		"totalStock":  &gql.Field{Type: gql.NewNonNull(gql.Int)},
		"totalDemand": &gql.Field{Type: gql.NewNonNull(gql.Int)},
		"fillRate": &gql.Field{
			Type: gql.NewNonNull(gql.Float),
			Resolve: func(p gql.ResolveParams) (interface{}, error) {
				s, _ := p.Source.(*dto.DashboardSummaryDTO)
				if s == nil {
					return nil, nil
				}
				return s.FillRate.InexactFloat64(), nil
			},
		},
	},
})

// NewSchema construye el esquema con los resolvers atados a deps.
func NewSchema(deps Deps) (gql.Schema, error) {
	r := &resolver{deps: deps}

	query := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"products": &gql.Field{
				Type: gql.NewNonNull(productPageType),
				Args: gql.FieldConfigArgument{
					"search":    &gql.ArgumentConfig{Type: gql.String},
					"warehouse": &gql.ArgumentConfig{Type: gql.String},
					"status":    &gql.ArgumentConfig{Type: gql.String},
					"page":      &gql.ArgumentConfig{Type: gql.Int, DefaultValue: dto.DefaultPage},
					"limit":     &gql.ArgumentConfig{Type: gql.Int, DefaultValue: dto.DefaultPageSize},
				},
				Resolve: r.products,
			},
			"product": &gql.Field{
				Type: productType,
				Args: gql.FieldConfigArgument{
					"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
				},
				Resolve: r.product,
			},
			"warehouses": &gql.Field{
				Type:    gql.NewNonNull(gql.NewList(gql.NewNonNull(warehouseType))),
				Resolve: r.warehouses,
			},
			"kpis": &gql.Field{
				Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(kpiType))),
				Args: gql.FieldConfigArgument{
					"range": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: r.kpis,
			},
			"summary": &gql.Field{
				Type:    gql.NewNonNull(summaryType),
				Resolve: r.summary,
			},
		},
	})

	mutation := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"updateDemand": &gql.Field{
				Type: gql.NewNonNull(productType),
				Args: gql.FieldConfigArgument{
					"id":     &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"demand": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
				},
				Resolve: r.updateDemand,
			},
			"transferStock": &gql.Field{
				Type: gql.NewNonNull(productType),
				Args: gql.FieldConfigArgument{
					"id":            &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"quantity":      &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
					"fromWarehouse": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"toWarehouse":   &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: r.transferStock,
			},
		},
	})

	return gql.NewSchema(gql.SchemaConfig{Query: query, Mutation: mutation})
}
