package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
)

type resolver struct {
	deps Deps
}

func (r *resolver) products(p gql.ResolveParams) (interface{}, error) {
	return r.deps.ProductUC.List(p.Context, dto.ProductQuery{
		Search:    argString(p.Args, "search"),
		Warehouse: argString(p.Args, "warehouse"),
		Status:    argString(p.Args, "status"),
		Page:      argInt(p.Args, "page", dto.DefaultPage),
		Limit:     argInt(p.Args, "limit", dto.DefaultPageSize),
	})
}

func (r *resolver) product(p gql.ResolveParams) (interface{}, error) {
	out, err := r.deps.ProductUC.GetByID(p.Context, argString(p.Args, "id"))
	if err != nil || out == nil {
		// nil tipado rompería la comprobación de null de graphql-go
		return nil, err
	}
	return out, nil
}

func (r *resolver) warehouses(p gql.ResolveParams) (interface{}, error) {
	return r.deps.WarehouseUC.List(p.Context)
}

func (r *resolver) kpis(p gql.ResolveParams) (interface{}, error) {
	return r.deps.KPIUC.Trend(p.Context, argString(p.Args, "range"))
}

func (r *resolver) summary(p gql.ResolveParams) (interface{}, error) {
	return r.deps.KPIUC.Summary(p.Context)
}

func (r *resolver) updateDemand(p gql.ResolveParams) (interface{}, error) {
	out, err := r.deps.StockUC.UpdateDemand(p.Context, dto.UpdateDemandRequest{
		ID:     argString(p.Args, "id"),
		Demand: argInt(p.Args, "demand", 0),
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *resolver) transferStock(p gql.ResolveParams) (interface{}, error) {
	out, err := r.deps.StockUC.TransferStock(p.Context, dto.TransferStockRequest{
		ID:            argString(p.Args, "id"),
		Quantity:      argInt(p.Args, "quantity", 0),
		FromWarehouse: argString(p.Args, "fromWarehouse"),
		ToWarehouse:   argString(p.Args, "toWarehouse"),
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func argString(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func argInt(args map[string]interface{}, key string, def int) int {
	if n, ok := args[key].(int); ok {
		return n
	}
	return def
}
