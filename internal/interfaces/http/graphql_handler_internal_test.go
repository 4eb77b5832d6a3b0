package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationLabel(t *testing.T) {
	tests := []struct {
		name, query, op, want string
	}{
		{"query anónima", `{ products { totalCount } }`, "", "products"},
		{"mutación", `mutation { transferStock(id:"P-1", quantity:1, fromWarehouse:"A", toWarehouse:"B") { id } }`, "", "transferStock"},
		{"operación nombrada", `query A { warehouses { code } } query B { kpis(range:"7d") { date } }`, "B", "kpis"},
		{"introspección", `{ __schema { types { name } } }`, "", "unknown"},
		{"sintaxis inválida", `{ products {`, "", "invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, operationLabel(tt.query, tt.op))
		})
	}
}
