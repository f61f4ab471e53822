package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/myezz/restaurant-api/pkg/db/models"
	pkgerrors "github.com/myezz/restaurant-api/pkg/errors"
	"github.com/myezz/restaurant-api/pkg/metrics"
)

// OrderSource loads the orders a restaurant received inside [start, end].
type OrderSource interface {
	ListOrdersInWindow(ctx context.Context, restaurantID uuid.UUID, start, end time.Time) ([]models.Order, error)
}

// Service builds dashboard reports for one restaurant at a time.
type Service interface {
	Sales(ctx context.Context, restaurantID uuid.UUID, rangeName string) (*SalesReport, error)
	Orders(ctx context.Context, restaurantID uuid.UUID, rangeName string) (*OrdersReport, error)
	Menu(ctx context.Context, restaurantID uuid.UUID, rangeName string) (*MenuReport, error)
	Heatmap(ctx context.Context, restaurantID uuid.UUID, rangeName string) (*HeatmapReport, error)
	Customers(ctx context.Context, restaurantID uuid.UUID, rangeName string) (*CustomersReport, error)
	Today(ctx context.Context, restaurantID uuid.UUID) (*TodayMetrics, error)
}

// Options tunes the report service. Zero values fall back to the host clock,
// no metrics and no per-query timeout.
type Options struct {
	Clock        func() time.Time
	Metrics      *metrics.ReportMetrics
	QueryTimeout time.Duration
}

type service struct {
	orders  OrderSource
	now     func() time.Time
	metrics *metrics.ReportMetrics
	timeout time.Duration
}

// NewService wires a report service over the given order source.
func NewService(orders OrderSource, opts Options) (Service, error) {
	if orders == nil {
		return nil, fmt.Errorf("order source required")
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &service{
		orders:  orders,
		now:     now,
		metrics: opts.Metrics,
		timeout: opts.QueryTimeout,
	}, nil
}

// Period echoes the resolved window back to the client.
type Period struct {
	Range       string      `json:"range"`
	Start       time.Time   `json:"start"`
	End         time.Time   `json:"end"`
	Granularity Granularity `json:"granularity"`
}

type SalesReport struct {
	Period
	Summary  Summary  `json:"summary"`
	Previous Summary  `json:"previous"`
	Change   Change   `json:"change"`
	Trend    []Bucket `json:"trend"`
}

type OrdersReport struct {
	Period
	OrderStats
}

type MenuReport struct {
	Period
	ItemRanking
}

type HeatmapReport struct {
	Period
	Heatmap
}

type CustomersReport struct {
	Period
	CustomerStats
}

// TodayMetrics backs the live dashboard tiles.
type TodayMetrics struct {
	Summary
	Date   string   `json:"date"`
	Change Change   `json:"change"`
	Trend  []Bucket `json:"trend"`
}

const (
	reportSales     = "sales"
	reportOrders    = "orders"
	reportMenu      = "menu"
	reportHeatmap   = "heatmap"
	reportCustomers = "customers"
	reportToday     = "today"
)

func (s *service) Sales(ctx context.Context, restaurantID uuid.UUID, rangeName string) (out *SalesReport, err error) {
	defer s.observe(reportSales, time.Now(), &err)

	window, err := ResolveRange(rangeName, s.now())
	if err != nil {
		return nil, err
	}
	current, previous, err := s.loadWithPrevious(ctx, restaurantID, window)
	if err != nil {
		return nil, err
	}

	summary := Summarize(current)
	prevSummary := Summarize(previous)
	return &SalesReport{
		Period:   period(rangeName, window),
		Summary:  summary,
		Previous: prevSummary,
		Change:   Compare(summary, prevSummary),
		Trend:    BuildBuckets(current, window, window.Granularity()),
	}, nil
}

func (s *service) Orders(ctx context.Context, restaurantID uuid.UUID, rangeName string) (out *OrdersReport, err error) {
	defer s.observe(reportOrders, time.Now(), &err)

	window, orders, err := s.resolveAndLoad(ctx, restaurantID, rangeName)
	if err != nil {
		return nil, err
	}
	return &OrdersReport{Period: period(rangeName, window), OrderStats: SummarizeOrders(orders)}, nil
}

func (s *service) Menu(ctx context.Context, restaurantID uuid.UUID, rangeName string) (out *MenuReport, err error) {
	defer s.observe(reportMenu, time.Now(), &err)

	window, orders, err := s.resolveAndLoad(ctx, restaurantID, rangeName)
	if err != nil {
		return nil, err
	}
	return &MenuReport{Period: period(rangeName, window), ItemRanking: RankItems(orders)}, nil
}

func (s *service) Heatmap(ctx context.Context, restaurantID uuid.UUID, rangeName string) (out *HeatmapReport, err error) {
	defer s.observe(reportHeatmap, time.Now(), &err)

	window, orders, err := s.resolveAndLoad(ctx, restaurantID, rangeName)
	if err != nil {
		return nil, err
	}
	return &HeatmapReport{Period: period(rangeName, window), Heatmap: BuildHeatmap(orders, window)}, nil
}

func (s *service) Customers(ctx context.Context, restaurantID uuid.UUID, rangeName string) (out *CustomersReport, err error) {
	defer s.observe(reportCustomers, time.Now(), &err)

	window, orders, err := s.resolveAndLoad(ctx, restaurantID, rangeName)
	if err != nil {
		return nil, err
	}
	return &CustomersReport{Period: period(rangeName, window), CustomerStats: Customers(orders)}, nil
}

func (s *service) Today(ctx context.Context, restaurantID uuid.UUID) (out *TodayMetrics, err error) {
	defer s.observe(reportToday, time.Now(), &err)

	window, err := ResolveRange(string(RangeToday), s.now())
	if err != nil {
		return nil, err
	}
	current, previous, err := s.loadWithPrevious(ctx, restaurantID, window)
	if err != nil {
		return nil, err
	}

	summary := Summarize(current)
	return &TodayMetrics{
		Summary: summary,
		Date:    window.Start.Format(time.DateOnly),
		Change:  Compare(summary, Summarize(previous)),
		Trend:   BuildBuckets(current, window, GranularityHourly),
	}, nil
}

func (s *service) resolveAndLoad(ctx context.Context, restaurantID uuid.UUID, rangeName string) (Window, []models.Order, error) {
	window, err := ResolveRange(rangeName, s.now())
	if err != nil {
		return Window{}, nil, err
	}
	orders, err := s.load(ctx, restaurantID, window)
	if err != nil {
		return Window{}, nil, err
	}
	return window, orders, nil
}

func (s *service) loadWithPrevious(ctx context.Context, restaurantID uuid.UUID, window Window) ([]models.Order, []models.Order, error) {
	var current, previous []models.Order
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.load(gctx, restaurantID, window)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.load(gctx, restaurantID, window.Previous())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return current, previous, nil
}

func (s *service) load(ctx context.Context, restaurantID uuid.UUID, window Window) ([]models.Order, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	orders, err := s.orders.ListOrdersInWindow(ctx, restaurantID, window.Start, window.End)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to load orders")
	}

	inWindow := orders[:0:0]
	for _, order := range orders {
		if window.Contains(order.CreatedAt) {
			inWindow = append(inWindow, order)
		}
	}
	return inWindow, nil
}

func (s *service) observe(report string, started time.Time, err *error) {
	s.metrics.ObserveDuration(report, time.Since(started))
	if err != nil && *err != nil && !pkgerrors.IsCode(*err, pkgerrors.CodeValidation) {
		s.metrics.IncFailure(report)
	}
}

func period(rangeName string, window Window) Period {
	return Period{
		Range:       string(normalizeRange(rangeName)),
		Start:       window.Start,
		End:         window.End,
		Granularity: window.Granularity(),
	}
}
