// Package analytics contiene los casos de uso del dashboard: tarjetas de resumen
// y la serie de tendencia stock vs. demanda.
package analytics

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/domain"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventory-dashboard/pkg/validator"
)

const (
	maxRangeDays = 365
	jitterSpan   = 0.10 // ±5 % alrededor del valor de la rampa
)

// KPIUseCase genera la serie de tendencia y el resumen del dashboard.
//
// La serie NO es histórica: el último punto (hoy) es el agregado real del catálogo
// y los días anteriores se fabrican con una rampa decreciente más ruido aleatorio.
type KPIUseCase struct {
	repo repository.CatalogRepository
	now  func() time.Time

	mu  sync.Mutex // *rand.Rand no es seguro entre goroutines
	rnd *rand.Rand
}

// Option ajusta el KPIUseCase.
type Option func(*KPIUseCase)

// WithSeed fija la semilla del generador aleatorio (0 = basada en la hora).
func WithSeed(seed int64) Option {
	return func(uc *KPIUseCase) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		uc.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithClock reemplaza el reloj usado para fechar la serie.
func WithClock(now func() time.Time) Option {
	return func(uc *KPIUseCase) { uc.now = now }
}

// NewKPIUseCase construye el caso de uso.
func NewKPIUseCase(repo repository.CatalogRepository, opts ...Option) *KPIUseCase {
	uc := &KPIUseCase{repo: repo, now: time.Now}
	WithSeed(0)(uc)
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

type rangeRequest struct {
	Days int `json:"range" validate:"min=1,max=365"`
}

// ParseRange interpreta el rango pedido: "7", "7d", "14d", "30d"...
func ParseRange(spec string) (int, error) {
	s := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(spec)), "d")
	days, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidRange, spec)
	}
	if errs := validator.ValidateStruct(rangeRequest{Days: days}); len(errs) > 0 {
		return 0, fmt.Errorf("%w: %s (max %d days)", domain.ErrInvalidRange, validator.Describe(errs), maxRangeDays)
	}
	return days, nil
}

// Trend devuelve N puntos, uno por día, del más antiguo a hoy (incluido).
func (uc *KPIUseCase) Trend(ctx context.Context, rangeSpec string) ([]dto.KPIPointDTO, error) {
	days, err := ParseRange(rangeSpec)
	if err != nil {
		return nil, err
	}
	products, err := uc.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	totalStock, totalDemand := totals(products)

	points := uc.synthesize(days, totalStock, totalDemand)
	out := make([]dto.KPIPointDTO, 0, len(points))
	for _, pt := range points {
		out = append(out, dto.KPIPointDTO{
			Date:   pt.Date.Format("2006-01-02"),
			Label:  pt.Date.Format("Jan 2"),
			Stock:  pt.Stock,
			Demand: pt.Demand,
		})
	}
	return out, nil
}

func (uc *KPIUseCase) synthesize(n, totalStock, totalDemand int) []entity.KPIPoint {
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	uc.mu.Lock()
	defer uc.mu.Unlock()

	points := make([]entity.KPIPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		pt := entity.KPIPoint{Date: today.AddDate(0, 0, -i)}
		if i == 0 {
			pt.Stock, pt.Demand = totalStock, totalDemand
		} else {
			// Rampa: el stock sube más rápido que la demanda hacia hoy.
			stockRamp := 1 - float64(i)/float64(2*n)
			demandRamp := 1 - float64(i)/float64(3*n)
			pt.Stock = int(math.Round(float64(totalStock) * stockRamp * uc.jitter()))
			pt.Demand = int(math.Round(float64(totalDemand) * demandRamp * uc.jitter()))
		}
		points = append(points, pt)
	}
	return points
}

func (uc *KPIUseCase) jitter() float64 {
	return 1 + (uc.rnd.Float64()-0.5)*jitterSpan
}

// Summary calcula stock total, demanda total y fill rate del catálogo actual.
// Fill rate = Σ min(stock, demand) / Σ demand × 100, con un decimal; 100 si no hay demanda.
func (uc *KPIUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	products, err := uc.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	totalStock, totalDemand := totals(products)

	satisfied := 0
	for _, p := range products {
		satisfied += min(p.Stock, p.Demand)
	}

	fillRate := decimal.NewFromInt(100)
	if totalDemand > 0 {
		fillRate = decimal.NewFromInt(int64(satisfied)).
			Div(decimal.NewFromInt(int64(totalDemand))).
			Mul(decimal.NewFromInt(100)).
			Round(1)
	}
	return &dto.DashboardSummaryDTO{
		TotalStock:  totalStock,
		TotalDemand: totalDemand,
		FillRate:    fillRate,
	}, nil
}

func totals(products []entity.Product) (stock, demand int) {
	for _, p := range products {
		stock += p.Stock
		demand += p.Demand
	}
	return stock, demand
}
