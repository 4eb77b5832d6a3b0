package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/usecase"
	"github.com/jhoicas/inventory-dashboard/internal/domain"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventory-dashboard/pkg/logger"
	"github.com/jhoicas/inventory-dashboard/pkg/validator"
)

// StockUseCase mutaciones sobre un producto: reasignación de demanda y traslado de bodega.
// Ambas son reemplazos completos (last-write-wins) sin token de concurrencia.
type StockUseCase struct {
	repo      repository.CatalogRepository
	publisher ChangePublisher
	log       *logger.Logger
	now       func() time.Time
}

// NewStockUseCase construye el caso de uso. publisher y log pueden ser nil.
func NewStockUseCase(repo repository.CatalogRepository, publisher ChangePublisher, log *logger.Logger) *StockUseCase {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &StockUseCase{
		repo:      repo,
		publisher: publisher,
		log:       log.Named("stock"),
		now:       time.Now,
	}
}

// UpdateDemand sobrescribe la demanda del producto. No valida signo ni magnitud.
func (uc *StockUseCase) UpdateDemand(ctx context.Context, in dto.UpdateDemandRequest) (*dto.ProductResponse, error) {
	var previous int
	product, err := uc.repo.UpdateProduct(ctx, in.ID, func(p *entity.Product) error {
		previous = p.Demand
		p.Demand = in.Demand
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product_id", product.ID).
		Int("previous_demand", previous).
		Int("demand", product.Demand).
		Msg("demanda actualizada")

	out := usecase.ToProductResponse(product)
	uc.publish(ctx, ChangeDemandUpdated, out)
	return out, nil
}

// TransferStock traslada el producto completo de FromWarehouse a ToWarehouse.
// Quantity se registra pero no se descuenta del stock: el registro entero cambia de bodega.
// Orden de errores: ErrProductNotFound, ErrWrongWarehouse si el producto no está en
// FromWarehouse, ErrInvalidInput si ToWarehouse está mal formado y ErrWarehouseNotFound
// si no existe. En todos los casos no modifica nada.
func (uc *StockUseCase) TransferStock(ctx context.Context, in dto.TransferStockRequest) (*dto.ProductResponse, error) {
	current, err := uc.repo.GetProduct(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if current.Warehouse != in.FromWarehouse {
		return nil, domain.ErrWrongWarehouse
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	// Bodegas inmutables: validar el destino fuera del lock de escritura es seguro.
	if _, err := uc.repo.GetWarehouse(ctx, in.ToWarehouse); err != nil {
		return nil, err
	}

	// Se vuelve a comprobar bajo el lock: otra transferencia pudo ganar la carrera.
	product, err := uc.repo.UpdateProduct(ctx, in.ID, func(p *entity.Product) error {
		if p.Warehouse != in.FromWarehouse {
			return domain.ErrWrongWarehouse
		}
		p.Warehouse = in.ToWarehouse
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product_id", product.ID).
		Str("from", in.FromWarehouse).
		Str("to", in.ToWarehouse).
		Int("requested_quantity", in.Quantity).
		Int("stock", product.Stock).
		Msg("producto trasladado")

	out := usecase.ToProductResponse(product)
	uc.publish(ctx, ChangeStockTransferred, out)
	return out, nil
}

func (uc *StockUseCase) publish(ctx context.Context, kind string, p *dto.ProductResponse) {
	uc.publisher.Publish(ctx, ProductChange{
		ID:         uuid.NewString(),
		Type:       kind,
		Product:    *p,
		OccurredAt: uc.now().UTC(),
	})
}

func validate(in interface{}) error {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Describe(errs))
	}
	return nil
}
