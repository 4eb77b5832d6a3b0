package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
)

// Tipos de cambio publicados tras una mutación.
const (
	ChangeDemandUpdated    = "demand_updated"
	ChangeStockTransferred = "stock_transferred"
)

// ProductChange evento emitido cuando una mutación modifica un producto.
type ProductChange struct {
	ID         string              `json:"id"`
	Type       string              `json:"type"`
	Product    dto.ProductResponse `json:"product"`
	OccurredAt time.Time           `json:"occurredAt"`
}

// ChangePublisher difunde cambios de producto a los dashboards conectados.
// Publicar es best-effort: nunca hace fallar la mutación.
type ChangePublisher interface {
	Publish(ctx context.Context, change ProductChange)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, ProductChange) {}
